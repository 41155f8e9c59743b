package authlocal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/authbackend"
)

func TestBackend_SignIn(t *testing.T) {
	t.Parallel()

	b := NewBackend(0)
	p, err := b.SignIn(context.Background(), authbackend.Credentials{
		Email:    "  Jane.Doe@Example.COM ",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if p.Email != "jane.doe@example.com" {
		t.Fatalf("email=%q", p.Email)
	}
	if p.Subject != "local|jane.doe@example.com" {
		t.Fatalf("subject=%q", p.Subject)
	}
	if p.FirstName != "Jane" {
		t.Fatalf("firstName=%q", p.FirstName)
	}
}

func TestBackend_SignIn_InvalidInput(t *testing.T) {
	t.Parallel()

	b := NewBackend(0)
	ctx := context.Background()

	if _, err := b.SignIn(ctx, authbackend.Credentials{Email: "not an email", Password: "x"}); !errors.Is(err, authbackend.ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
	if _, err := b.SignIn(ctx, authbackend.Credentials{Email: "a@b.co", Password: ""}); !errors.Is(err, authbackend.ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
}

func TestBackend_Register(t *testing.T) {
	t.Parallel()

	b := NewBackend(0)
	ctx := context.Background()

	p, err := b.Register(ctx, authbackend.Registration{
		Email:     "ada@example.com",
		Password:  "secret",
		FirstName: "  Ada ",
		LastName:  " Lovelace ",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if p.FirstName != "Ada" || p.LastName != "Lovelace" {
		t.Fatalf("profile=%+v", p)
	}

	// Without a name, the first name is derived from the address.
	p, err = b.Register(ctx, authbackend.Registration{Email: "grace.h@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if p.FirstName != "Grace" {
		t.Fatalf("derived firstName=%q", p.FirstName)
	}
}

func TestBackend_LatencyHonorsContext(t *testing.T) {
	t.Parallel()

	b := NewBackend(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := b.SignIn(ctx, authbackend.Credentials{Email: "a@b.co", Password: "x"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v, want context.DeadlineExceeded", err)
	}
}

func TestFirstNameFromEmail(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"jane.doe@example.com", "Jane"},
		{"bob@example.com", "Bob"},
		{"x+tag@example.com", "X"},
		{"@example.com", "Traveler"},
	}
	for _, c := range cases {
		if got := firstNameFromEmail(c.in); got != c.want {
			t.Fatalf("firstNameFromEmail(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

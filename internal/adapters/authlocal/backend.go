// Package authlocal is the in-process implementation of the auth backend
// port. It performs no real credential verification: well-formed input always
// succeeds and the profile is seeded from the e-mail address. A real provider
// adapter can replace it behind the same port.
package authlocal

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/authbackend"
)

type Backend struct {
	// latency approximates a remote provider in demos. Zero by default;
	// the session service never depends on it.
	latency time.Duration
}

func NewBackend(latency time.Duration) *Backend {
	return &Backend{latency: latency}
}

func (b *Backend) SignIn(ctx context.Context, c authbackend.Credentials) (authbackend.Profile, error) {
	if err := b.wait(ctx); err != nil {
		return authbackend.Profile{}, err
	}
	email, err := wellFormedEmail(c.Email)
	if err != nil {
		return authbackend.Profile{}, err
	}
	if c.Password == "" {
		return authbackend.Profile{}, fmt.Errorf("%w: empty password", authbackend.ErrInvalidInput)
	}
	return authbackend.Profile{
		Subject:   "local|" + email,
		Email:     email,
		FirstName: firstNameFromEmail(email),
	}, nil
}

func (b *Backend) Register(ctx context.Context, r authbackend.Registration) (authbackend.Profile, error) {
	if err := b.wait(ctx); err != nil {
		return authbackend.Profile{}, err
	}
	email, err := wellFormedEmail(r.Email)
	if err != nil {
		return authbackend.Profile{}, err
	}
	if r.Password == "" {
		return authbackend.Profile{}, fmt.Errorf("%w: empty password", authbackend.ErrInvalidInput)
	}
	first := domain.NormalizeHumanName(r.FirstName)
	if first == "" {
		first = firstNameFromEmail(email)
	}
	return authbackend.Profile{
		Subject:   "local|" + email,
		Email:     email,
		FirstName: first,
		LastName:  domain.NormalizeHumanName(r.LastName),
	}, nil
}

func (b *Backend) wait(ctx context.Context) error {
	if b.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(b.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func wellFormedEmail(s string) (string, error) {
	addr := strings.ToLower(strings.TrimSpace(s))
	if _, err := mail.ParseAddress(addr); err != nil {
		return "", fmt.Errorf("%w: malformed email", authbackend.ErrInvalidInput)
	}
	return addr, nil
}

// firstNameFromEmail turns "jane.doe@example.com" into "Jane".
func firstNameFromEmail(email string) string {
	local := email
	if i := strings.IndexByte(local, '@'); i >= 0 {
		local = local[:i]
	}
	if i := strings.IndexAny(local, ".+_-"); i >= 0 {
		local = local[:i]
	}
	if local == "" {
		return "Traveler"
	}
	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

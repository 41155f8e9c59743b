package session

import (
	"context"
	"testing"
	"time"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/authlocal"
	memclock "github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/memory/clock"
	memkvstore "github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/memory/kvstore"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/patch"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/collection"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/authbackend"
	kvstoreport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

func newSessionService(t *testing.T) (*Service, kvstoreport.Store) {
	t.Helper()
	kv := memkvstore.NewStore()
	record := collection.NewSingle[domain.User](kv, kvstoreport.KeyUser, collection.Options{})
	flag := collection.NewFlag(kv, kvstoreport.KeyOnboarding, 0)
	clk := memclock.NewManualClock(time.Unix(1700000000, 0).UTC())
	svc := NewService(record, flag, authlocal.NewBackend(0), clk)
	n := 0
	svc.SetNewUserIDForTest(func() domain.UserID {
		n++
		return domain.UserID("user-" + string(rune('0'+n)))
	})
	return svc, kv
}

func signIn(t *testing.T, svc *Service) domain.User {
	t.Helper()
	u, err := svc.SignIn(context.Background(), authbackend.Credentials{
		Email:    "jane.doe@example.com",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	return u
}

func TestService_SignInEstablishesSession(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	ctx := context.Background()

	if _, ok, err := svc.Current(ctx); err != nil || ok {
		t.Fatalf("Current before sign-in = (_, %v, %v), want (false, nil)", ok, err)
	}

	u := signIn(t, svc)
	if u.Email != "jane.doe@example.com" || u.FirstName == "" {
		t.Fatalf("seeded user=%+v", u)
	}
	if u.VisitedCountries == nil || len(u.VisitedCountries) != 0 {
		t.Fatalf("visited countries must start as an empty list: %+v", u.VisitedCountries)
	}

	got, ok, err := svc.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("Current = (_, %v, %v)", ok, err)
	}
	if got.ID != u.ID {
		t.Fatalf("got=%+v want id %q", got, u.ID)
	}
}

func TestService_SignIn_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	ctx := context.Background()

	if _, err := svc.SignIn(ctx, authbackend.Credentials{Email: "not-an-address", Password: "x"}); err == nil {
		t.Fatalf("SignIn with bad email succeeded")
	}
	if _, err := svc.SignIn(ctx, authbackend.Credentials{Email: "a@b.co", Password: ""}); err == nil {
		t.Fatalf("SignIn with empty password succeeded")
	}
	// A failed sign-in leaves the session signed out.
	if _, ok, err := svc.Current(ctx); err != nil || ok {
		t.Fatalf("Current after failed sign-in = (_, %v, %v), want (false, nil)", ok, err)
	}
}

func TestService_SignOutIsIdempotent(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	ctx := context.Background()

	signIn(t, svc)
	if err := svc.SignOut(ctx); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if err := svc.SignOut(ctx); err != nil {
		t.Fatalf("SignOut(again) = %v, want nil", err)
	}
	if _, ok, err := svc.Current(ctx); err != nil || ok {
		t.Fatalf("Current after sign-out = (_, %v, %v), want (false, nil)", ok, err)
	}
}

func TestService_AddVisitedCountry_Dedupes(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	ctx := context.Background()
	signIn(t, svc)

	if err := svc.AddVisitedCountry(ctx, "France"); err != nil {
		t.Fatalf("AddVisitedCountry: %v", err)
	}
	// Same country with different spacing and case: no growth, no increment.
	if err := svc.AddVisitedCountry(ctx, "  fRaNcE "); err != nil {
		t.Fatalf("AddVisitedCountry(dup): %v", err)
	}
	if err := svc.AddVisitedCountry(ctx, "Japan"); err != nil {
		t.Fatalf("AddVisitedCountry(Japan): %v", err)
	}

	u, ok, err := svc.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("Current = (_, %v, %v)", ok, err)
	}
	if len(u.VisitedCountries) != 2 || u.CountriesVisited != 2 {
		t.Fatalf("countries=%v counter=%d, want 2 entries", u.VisitedCountries, u.CountriesVisited)
	}
	if u.VisitedCountries[0] != "France" || u.VisitedCountries[1] != "Japan" {
		t.Fatalf("insertion order lost: %v", u.VisitedCountries)
	}
}

func TestService_AddVisitedCountry_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	ctx := context.Background()
	signIn(t, svc)

	if err := svc.AddVisitedCountry(ctx, "   "); err == nil {
		t.Fatalf("AddVisitedCountry(blank) succeeded")
	}
}

func TestService_AddVisitedCountry_SignedOutIsNoOp(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	if err := svc.AddVisitedCountry(context.Background(), "France"); err != nil {
		t.Fatalf("AddVisitedCountry signed out = %v, want nil", err)
	}
}

func TestService_IncrementTripsCompleted(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	ctx := context.Background()
	signIn(t, svc)

	for i := 0; i < 3; i++ {
		if err := svc.IncrementTripsCompleted(ctx); err != nil {
			t.Fatalf("IncrementTripsCompleted: %v", err)
		}
	}
	u, _, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if u.TripsCompleted != 3 {
		t.Fatalf("tripsCompleted=%d, want 3", u.TripsCompleted)
	}
}

func TestService_UpdateProfile(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	ctx := context.Background()
	signIn(t, svc)

	avatar := "avatars/1.png"
	err := svc.UpdateProfile(ctx, UpdateProfileInput{
		FirstName:   patch.Some("  Grace "),
		Email:       patch.Some(" Grace@Example.COM "),
		AvatarImage: patch.Some(avatar),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	u, _, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if u.FirstName != "Grace" || u.Email != "grace@example.com" {
		t.Fatalf("user=%+v", u)
	}
	if u.AvatarImage == nil || *u.AvatarImage != avatar {
		t.Fatalf("avatar=%v", u.AvatarImage)
	}

	// Null clears the avatar; null names are rejected.
	if err := svc.UpdateProfile(ctx, UpdateProfileInput{AvatarImage: patch.Null[string]()}); err != nil {
		t.Fatalf("UpdateProfile(clear avatar): %v", err)
	}
	u, _, _ = svc.Current(ctx)
	if u.AvatarImage != nil {
		t.Fatalf("avatar not cleared: %v", u.AvatarImage)
	}
	if err := svc.UpdateProfile(ctx, UpdateProfileInput{FirstName: patch.Null[string]()}); err == nil {
		t.Fatalf("UpdateProfile(null firstName) succeeded")
	}
	if err := svc.UpdateProfile(ctx, UpdateProfileInput{Email: patch.Some("nope")}); err == nil {
		t.Fatalf("UpdateProfile(bad email) succeeded")
	}
}

func TestService_UpdateProfile_SignedOutIsNoOp(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	err := svc.UpdateProfile(context.Background(), UpdateProfileInput{FirstName: patch.Some("Nobody")})
	if err != nil {
		t.Fatalf("UpdateProfile signed out = %v, want nil", err)
	}
}

func TestService_Onboarding(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionService(t)
	ctx := context.Background()

	done, err := svc.HasCompletedOnboarding(ctx)
	if err != nil || done {
		t.Fatalf("HasCompletedOnboarding = (%v, %v), want (false, nil)", done, err)
	}
	if err := svc.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	if err := svc.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("CompleteOnboarding(again) = %v, want nil", err)
	}
	done, err = svc.HasCompletedOnboarding(ctx)
	if err != nil || !done {
		t.Fatalf("HasCompletedOnboarding = (%v, %v), want (true, nil)", done, err)
	}
}

func TestService_SessionSurvivesRestart(t *testing.T) {
	t.Parallel()

	kv := memkvstore.NewStore()
	clk := memclock.NewManualClock(time.Unix(1700000000, 0).UTC())
	build := func() *Service {
		record := collection.NewSingle[domain.User](kv, kvstoreport.KeyUser, collection.Options{})
		flag := collection.NewFlag(kv, kvstoreport.KeyOnboarding, 0)
		return NewService(record, flag, authlocal.NewBackend(0), clk)
	}

	first := build()
	u := signIn(t, first)
	if err := first.AddVisitedCountry(context.Background(), "Peru"); err != nil {
		t.Fatalf("AddVisitedCountry: %v", err)
	}

	// A fresh service over the same backend restores the session.
	second := build()
	got, ok, err := second.Current(context.Background())
	if err != nil || !ok {
		t.Fatalf("Current after restart = (_, %v, %v)", ok, err)
	}
	if got.ID != u.ID || got.CountriesVisited != 1 {
		t.Fatalf("restored=%+v", got)
	}
}

// Package session manages the single signed-in user record: a one-record
// specialization of the persisted-collection pattern, plus the derived
// travel counters and the one-shot onboarding flag.
package session

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/apperr"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/collection"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/authbackend"
	clockport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/clock"
)

// Authentication is a two-state machine: SignedOut -> SignedIn via
// SignIn/Register, SignedIn -> SignedOut via SignOut. There are no
// intermediate states; a failed sign-in leaves the state SignedOut.
type Service struct {
	record  *collection.Single[domain.User]
	onboard *collection.Flag
	auth    authbackend.Backend
	clk     clockport.Clock

	newUserID func() domain.UserID
}

func NewService(record *collection.Single[domain.User], onboard *collection.Flag, auth authbackend.Backend, clk clockport.Clock) *Service {
	return &Service{
		record:  record,
		onboard: onboard,
		auth:    auth,
		clk:     clk,
		newUserID: func() domain.UserID {
			return domain.UserID(uuid.NewString())
		},
	}
}

// SetNewUserIDForTest overrides user ID generation for deterministic tests.
// It should not be used in production code.
func (s *Service) SetNewUserIDForTest(fn func() domain.UserID) {
	if fn != nil {
		s.newUserID = fn
	}
}

// Current returns the signed-in user, loading it from durable storage on
// first use. ok=false means signed out.
func (s *Service) Current(ctx context.Context) (domain.User, bool, error) {
	return s.record.Get(ctx)
}

// SignIn authenticates against the backend and persists the seeded session
// record. Any failure leaves the session signed out.
func (s *Service) SignIn(ctx context.Context, c authbackend.Credentials) (domain.User, error) {
	profile, err := s.auth.SignIn(ctx, c)
	if err != nil {
		return domain.User{}, mapAuthErr(err)
	}
	return s.establish(ctx, profile)
}

// Register creates an account through the backend and signs the user in.
func (s *Service) Register(ctx context.Context, r authbackend.Registration) (domain.User, error) {
	profile, err := s.auth.Register(ctx, r)
	if err != nil {
		return domain.User{}, mapAuthErr(err)
	}
	return s.establish(ctx, profile)
}

func (s *Service) establish(ctx context.Context, p authbackend.Profile) (domain.User, error) {
	now := s.clk.Now()
	u := domain.User{
		ID:               s.newUserID(),
		Email:            p.Email,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		AvatarImage:      cloneStringPtr(p.AvatarImage),
		VisitedCountries: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.record.Put(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// SignOut clears the in-memory session and deletes the durable key. Calling
// it while signed out is a no-op, not an error.
func (s *Service) SignOut(ctx context.Context) error {
	return s.record.Clear(ctx)
}

// UpdateProfile shallow-merges the patch into the session record. When no
// session exists this silently does nothing.
func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileInput) error {
	if in.FirstName.IsNull() {
		return apperr.Validation("invalid firstName", "firstName", "cannot be null")
	}
	if in.LastName.IsNull() {
		return apperr.Validation("invalid lastName", "lastName", "cannot be null")
	}
	if in.Email.IsSpecified() {
		if in.Email.IsNull() {
			return apperr.Validation("invalid email", "email", "cannot be null")
		}
		if _, err := mail.ParseAddress(strings.TrimSpace(in.Email.Value())); err != nil {
			return apperr.Validation("invalid email", "email", "must be a well-formed address")
		}
	}

	now := s.clk.Now()
	_, err := s.record.Mutate(ctx, func(u domain.User) domain.User {
		if in.FirstName.IsSpecified() {
			u.FirstName = domain.NormalizeHumanName(in.FirstName.Value())
		}
		if in.LastName.IsSpecified() {
			u.LastName = domain.NormalizeHumanName(in.LastName.Value())
		}
		if in.Email.IsSpecified() {
			u.Email = strings.ToLower(strings.TrimSpace(in.Email.Value()))
		}
		if in.AvatarImage.IsSpecified() {
			if in.AvatarImage.IsNull() {
				u.AvatarImage = nil
			} else {
				v := in.AvatarImage.Value()
				u.AvatarImage = &v
			}
		}
		u.UpdatedAt = now
		return u
	})
	return err
}

// AddVisitedCountry records a country once. Adding a country that is already
// present changes nothing: the list does not grow and CountriesVisited is not
// incremented. The counter is recomputed from the list on every change so it
// can never drift.
func (s *Service) AddVisitedCountry(ctx context.Context, country string) error {
	name := domain.NormalizeCountryName(country)
	if name == "" {
		return apperr.Validation("invalid country", "country", "must be non-empty")
	}

	u, ok, err := s.record.Get(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if u.HasVisited(name) {
		return nil
	}

	now := s.clk.Now()
	_, err = s.record.Mutate(ctx, func(u domain.User) domain.User {
		if !u.HasVisited(name) {
			u.VisitedCountries = append(append([]string(nil), u.VisitedCountries...), name)
		}
		u.CountriesVisited = len(u.VisitedCountries)
		u.UpdatedAt = now
		return u
	})
	return err
}

// IncrementTripsCompleted bumps the completed-trip counter by exactly one.
// There is no upper bound and no decrement operation.
func (s *Service) IncrementTripsCompleted(ctx context.Context) error {
	now := s.clk.Now()
	_, err := s.record.Mutate(ctx, func(u domain.User) domain.User {
		u.TripsCompleted++
		u.UpdatedAt = now
		return u
	})
	return err
}

// HasCompletedOnboarding reports the one-shot onboarding flag.
func (s *Service) HasCompletedOnboarding(ctx context.Context) (bool, error) {
	return s.onboard.Get(ctx)
}

// CompleteOnboarding marks onboarding as done. Idempotent.
func (s *Service) CompleteOnboarding(ctx context.Context) error {
	return s.onboard.Set(ctx)
}

func mapAuthErr(err error) error {
	if errors.Is(err, authbackend.ErrInvalidInput) {
		return apperr.Validation("invalid credentials", "credentials", "email and password must be well-formed")
	}
	return err
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Package trips implements the trip use-cases over the persisted trip
// collection: planning, patching, reviews, and completion with its profile
// counter side effects.
package trips

import (
	"context"
	"strings"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/apperr"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/collection"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
	clockport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/clock"
)

// ProfileRecorder receives the counter side effects of completing a trip.
// The session service implements it; a nil recorder disables the counters.
type ProfileRecorder interface {
	IncrementTripsCompleted(ctx context.Context) error
	AddVisitedCountry(ctx context.Context, country string) error
}

type Service struct {
	store   *collection.Store[domain.Trip]
	profile ProfileRecorder
	clk     clockport.Clock
}

func NewService(store *collection.Store[domain.Trip], profile ProfileRecorder, clk clockport.Clock) *Service {
	return &Service{store: store, profile: profile, clk: clk}
}

// Plan validates and persists a new trip. New trips start upcoming.
func (s *Service) Plan(ctx context.Context, in PlanTripInput) (domain.Trip, error) {
	title := domain.NormalizeHumanName(in.Title)
	if title == "" {
		return domain.Trip{}, apperr.Validation("invalid title", "title", "must be non-empty")
	}
	dest := domain.NormalizeHumanName(in.Destination)
	if dest == "" {
		return domain.Trip{}, apperr.Validation("invalid destination", "destination", "must be non-empty")
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		return domain.Trip{}, apperr.Validation("invalid date range", "endDate", "must be on or after startDate")
	}

	now := s.clk.Now()
	t := domain.Trip{
		Title:       title,
		Destination: dest,
		StartDate:   in.StartDate.UTC(),
		EndDate:     in.EndDate.UTC(),
		Status:      domain.TripStatusUpcoming,
		CoverImage:  in.CoverImage,
		Description: cloneStringPtr(in.Description),
		Budget:      cloneMoneyPtr(in.Budget),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.store.Add(ctx, t)
}

// List returns all trips in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.Trip, error) {
	return s.store.All(ctx)
}

func (s *Service) Get(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	t, ok, err := s.store.Get(ctx, string(id))
	if err != nil {
		return domain.Trip{}, err
	}
	if !ok {
		return domain.Trip{}, &apperr.Error{Status: 404, Code: "TRIP_NOT_FOUND", Message: "trip not found"}
	}
	return t, nil
}

// Update shallow-merges the patch into the trip. An unmatched identifier is
// a no-op; callers must not rely on an error being raised.
func (s *Service) Update(ctx context.Context, id domain.TripID, in UpdateTripInput) error {
	cur, ok, err := s.store.Get(ctx, string(id))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	merged, err := mergeTrip(cur, in)
	if err != nil {
		return err
	}
	merged.UpdatedAt = s.clk.Now()
	return s.store.Update(ctx, string(id), func(domain.Trip) domain.Trip { return merged })
}

// SetStatus moves the trip to the given status. Unmatched identifiers no-op.
func (s *Service) SetStatus(ctx context.Context, id domain.TripID, status domain.TripStatus) error {
	if !domain.ValidTripStatus(status) {
		return apperr.Validation("invalid status", "status", "must be upcoming, ongoing, or completed")
	}
	now := s.clk.Now()
	return s.store.Update(ctx, string(id), func(t domain.Trip) domain.Trip {
		t.Status = status
		t.UpdatedAt = now
		return t
	})
}

// AddReview attaches a review to the trip, replacing any existing one.
func (s *Service) AddReview(ctx context.Context, id domain.TripID, in ReviewInput) error {
	if in.Rating < 1 || in.Rating > 5 {
		return apperr.Validation("invalid rating", "rating", "must be between 1 and 5")
	}
	now := s.clk.Now()
	return s.store.Update(ctx, string(id), func(t domain.Trip) domain.Trip {
		t.Review = &domain.TripReview{
			Rating:    in.Rating,
			Text:      strings.TrimSpace(in.Text),
			PhotoRefs: append([]string(nil), in.PhotoRefs...),
			CreatedAt: now,
		}
		t.UpdatedAt = now
		return t
	})
}

// Remove deletes the trip. An unmatched identifier is a no-op.
func (s *Service) Remove(ctx context.Context, id domain.TripID) error {
	return s.store.Remove(ctx, string(id))
}

// Complete marks the trip completed and records the profile counters: trips
// completed +1 and the destination country added to the visited set. It is
// idempotent; completing an already-completed trip changes nothing.
func (s *Service) Complete(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	cur, ok, err := s.store.Get(ctx, string(id))
	if err != nil {
		return domain.Trip{}, err
	}
	if !ok {
		return domain.Trip{}, &apperr.Error{Status: 404, Code: "TRIP_NOT_FOUND", Message: "trip not found"}
	}
	if cur.Status == domain.TripStatusCompleted {
		return cur, nil
	}

	now := s.clk.Now()
	cur.Status = domain.TripStatusCompleted
	cur.UpdatedAt = now
	if err := s.store.Update(ctx, string(id), func(domain.Trip) domain.Trip { return cur }); err != nil {
		return domain.Trip{}, err
	}

	if s.profile != nil {
		if err := s.profile.IncrementTripsCompleted(ctx); err != nil {
			return domain.Trip{}, err
		}
		if country := CountryOf(cur.Destination); country != "" {
			if err := s.profile.AddVisitedCountry(ctx, country); err != nil {
				return domain.Trip{}, err
			}
		}
	}
	return cur, nil
}

// CountryOf extracts the country from a "City, Country" destination string.
// A destination without a comma is treated as the country itself.
func CountryOf(destination string) string {
	d := domain.NormalizeHumanName(destination)
	if i := strings.LastIndex(d, ","); i >= 0 {
		return strings.TrimSpace(d[i+1:])
	}
	return d
}

func mergeTrip(t domain.Trip, in UpdateTripInput) (domain.Trip, error) {
	if in.Title.IsSpecified() {
		if in.Title.IsNull() {
			return domain.Trip{}, apperr.Validation("invalid title", "title", "cannot be null")
		}
		title := domain.NormalizeHumanName(in.Title.Value())
		if title == "" {
			return domain.Trip{}, apperr.Validation("invalid title", "title", "must be non-empty")
		}
		t.Title = title
	}
	if in.Destination.IsSpecified() {
		if in.Destination.IsNull() {
			return domain.Trip{}, apperr.Validation("invalid destination", "destination", "cannot be null")
		}
		dest := domain.NormalizeHumanName(in.Destination.Value())
		if dest == "" {
			return domain.Trip{}, apperr.Validation("invalid destination", "destination", "must be non-empty")
		}
		t.Destination = dest
	}
	if in.StartDate.IsSpecified() && !in.StartDate.IsNull() {
		t.StartDate = in.StartDate.Value().UTC()
	}
	if in.EndDate.IsSpecified() && !in.EndDate.IsNull() {
		t.EndDate = in.EndDate.Value().UTC()
	}
	if in.Status.IsSpecified() && !in.Status.IsNull() {
		if !domain.ValidTripStatus(in.Status.Value()) {
			return domain.Trip{}, apperr.Validation("invalid status", "status", "must be upcoming, ongoing, or completed")
		}
		t.Status = in.Status.Value()
	}
	if in.CoverImage.IsSpecified() && !in.CoverImage.IsNull() {
		t.CoverImage = in.CoverImage.Value()
	}
	if in.Description.IsSpecified() {
		if in.Description.IsNull() {
			t.Description = nil
		} else {
			v := in.Description.Value()
			t.Description = &v
		}
	}
	if in.Budget.IsSpecified() {
		if in.Budget.IsNull() {
			t.Budget = nil
		} else {
			v := in.Budget.Value()
			t.Budget = &v
		}
	}
	if !t.StartDate.IsZero() && !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		return domain.Trip{}, apperr.Validation("invalid date range", "endDate", "must be on or after startDate")
	}
	return t, nil
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneMoneyPtr(p *domain.Money) *domain.Money {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

package trips

import (
	"context"
	"errors"
	"testing"
	"time"

	memclock "github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/memory/clock"
	memkvstore "github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/memory/kvstore"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/apperr"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/patch"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/collection"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
	kvstoreport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

type recorderSpy struct {
	completed int
	countries []string
}

func (r *recorderSpy) IncrementTripsCompleted(context.Context) error { r.completed++; return nil }
func (r *recorderSpy) AddVisitedCountry(_ context.Context, c string) error {
	r.countries = append(r.countries, c)
	return nil
}

func newTripService(t *testing.T, profile ProfileRecorder) (*Service, *memclock.ManualClock) {
	t.Helper()
	kv := memkvstore.NewStore()
	store := collection.New(kv, kvstoreport.KeyTrips, func(tr domain.Trip, id string) domain.Trip {
		tr.ID = domain.TripID(id)
		return tr
	}, collection.Options{})
	clk := memclock.NewManualClock(time.Unix(1700000000, 0).UTC())
	return NewService(store, profile, clk), clk
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_PlanAndGet(t *testing.T) {
	t.Parallel()

	svc, clk := newTripService(t, nil)
	ctx := context.Background()

	planned, err := svc.Plan(ctx, PlanTripInput{
		Title:       "  Summer   in Paris ",
		Destination: " Paris,  France ",
		StartDate:   date(2026, time.June, 1),
		EndDate:     date(2026, time.June, 8),
		CoverImage:  "covers/paris.jpg",
	})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if planned.ID == "" {
		t.Fatalf("planned trip has no id")
	}
	if planned.Title != "Summer in Paris" || planned.Destination != "Paris, France" {
		t.Fatalf("normalization wrong: %+v", planned)
	}
	if planned.Status != domain.TripStatusUpcoming {
		t.Fatalf("status=%q, want upcoming", planned.Status)
	}
	if !planned.CreatedAt.Equal(clk.Now()) || !planned.UpdatedAt.Equal(clk.Now()) {
		t.Fatalf("timestamps not pinned to clock: %+v", planned)
	}

	got, err := svc.Get(ctx, planned.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != planned.ID || got.Title != planned.Title {
		t.Fatalf("got=%+v", got)
	}
}

func TestService_Plan_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTripService(t, nil)
	ctx := context.Background()

	if _, err := svc.Plan(ctx, PlanTripInput{Title: "   ", Destination: "Lisbon, Portugal"}); !isValidation(err) {
		t.Fatalf("Plan(blank title) err=%v, want validation error", err)
	}
	if _, err := svc.Plan(ctx, PlanTripInput{
		Title:       "Backwards",
		Destination: "Lisbon, Portugal",
		StartDate:   date(2026, time.June, 8),
		EndDate:     date(2026, time.June, 1),
	}); !isValidation(err) {
		t.Fatalf("Plan(end before start) err=%v, want validation error", err)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTripService(t, nil)
	_, err := svc.Get(context.Background(), "missing")
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 404 || ae.Code != "TRIP_NOT_FOUND" {
		t.Fatalf("err=%v, want TRIP_NOT_FOUND 404", err)
	}
}

func TestService_Update_MissingIsNoOp(t *testing.T) {
	t.Parallel()

	svc, _ := newTripService(t, nil)
	err := svc.Update(context.Background(), "missing", UpdateTripInput{
		Title: patch.Some("New Title"),
	})
	if err != nil {
		t.Fatalf("Update(missing) = %v, want nil", err)
	}
}

func TestService_Update_PatchSemantics(t *testing.T) {
	t.Parallel()

	svc, _ := newTripService(t, nil)
	ctx := context.Background()

	desc := "the long version"
	planned, err := svc.Plan(ctx, PlanTripInput{
		Title:       "Kyoto in Autumn",
		Destination: "Kyoto, Japan",
		StartDate:   date(2026, time.November, 2),
		EndDate:     date(2026, time.November, 12),
		Description: &desc,
		Budget:      &domain.Money{Amount: 3000, Currency: "USD"},
	})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	// Omitted fields keep their values; null clears the nullable ones.
	err = svc.Update(ctx, planned.ID, UpdateTripInput{
		Title:       patch.Some("Kyoto, Finally"),
		Description: patch.Null[string](),
		Budget:      patch.Null[domain.Money](),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.Get(ctx, planned.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Kyoto, Finally" {
		t.Fatalf("title=%q", got.Title)
	}
	if got.Destination != "Kyoto, Japan" {
		t.Fatalf("omitted destination changed: %q", got.Destination)
	}
	if got.Description != nil || got.Budget != nil {
		t.Fatalf("null did not clear: desc=%v budget=%v", got.Description, got.Budget)
	}

	// Title cannot be null.
	if err := svc.Update(ctx, planned.ID, UpdateTripInput{Title: patch.Null[string]()}); !isValidation(err) {
		t.Fatalf("Update(null title) err=%v, want validation error", err)
	}
}

func TestService_SetStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newTripService(t, nil)
	ctx := context.Background()

	planned, err := svc.Plan(ctx, PlanTripInput{Title: "Paris Trip", Destination: "Paris, France"})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if err := svc.SetStatus(ctx, planned.ID, domain.TripStatus("done")); !isValidation(err) {
		t.Fatalf("SetStatus(bad status) err=%v, want validation error", err)
	}
	if err := svc.SetStatus(ctx, planned.ID, domain.TripStatusCompleted); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	got, err := svc.Get(ctx, planned.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.TripStatusCompleted {
		t.Fatalf("status=%q", got.Status)
	}
	if got.Title != planned.Title || got.Destination != planned.Destination {
		t.Fatalf("other fields changed: %+v", got)
	}

	// Unmatched identifiers no-op.
	if err := svc.SetStatus(ctx, "missing", domain.TripStatusOngoing); err != nil {
		t.Fatalf("SetStatus(missing) = %v, want nil", err)
	}
}

func TestService_AddReview(t *testing.T) {
	t.Parallel()

	svc, clk := newTripService(t, nil)
	ctx := context.Background()

	planned, err := svc.Plan(ctx, PlanTripInput{Title: "Cusco Trek", Destination: "Cusco, Peru"})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if err := svc.AddReview(ctx, planned.ID, ReviewInput{Rating: 0}); !isValidation(err) {
		t.Fatalf("AddReview(rating 0) err=%v, want validation error", err)
	}
	if err := svc.AddReview(ctx, planned.ID, ReviewInput{Rating: 6}); !isValidation(err) {
		t.Fatalf("AddReview(rating 6) err=%v, want validation error", err)
	}

	clk.Advance(time.Hour)
	if err := svc.AddReview(ctx, planned.ID, ReviewInput{Rating: 5, Text: " unforgettable "}); err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	got, err := svc.Get(ctx, planned.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Review == nil || got.Review.Rating != 5 || got.Review.Text != "unforgettable" {
		t.Fatalf("review=%+v", got.Review)
	}
	if !got.Review.CreatedAt.Equal(clk.Now()) {
		t.Fatalf("review timestamp not pinned: %v", got.Review.CreatedAt)
	}

	// Reviewing a missing trip is a no-op.
	if err := svc.AddReview(ctx, "missing", ReviewInput{Rating: 3}); err != nil {
		t.Fatalf("AddReview(missing) = %v, want nil", err)
	}
}

func TestService_Complete_RecordsProfileCounters(t *testing.T) {
	t.Parallel()

	spy := &recorderSpy{}
	svc, _ := newTripService(t, spy)
	ctx := context.Background()

	paris, err := svc.Plan(ctx, PlanTripInput{Title: "Paris", Destination: "Paris, France"})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	done, err := svc.Complete(ctx, paris.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if done.Status != domain.TripStatusCompleted {
		t.Fatalf("status=%q", done.Status)
	}
	if spy.completed != 1 || len(spy.countries) != 1 || spy.countries[0] != "France" {
		t.Fatalf("recorder=%+v", spy)
	}

	// Completing again changes nothing.
	if _, err := svc.Complete(ctx, paris.ID); err != nil {
		t.Fatalf("Complete(again): %v", err)
	}
	if spy.completed != 1 || len(spy.countries) != 1 {
		t.Fatalf("idempotence broken: %+v", spy)
	}
}

func TestService_Complete_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTripService(t, &recorderSpy{})
	_, err := svc.Complete(context.Background(), "missing")
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 404 {
		t.Fatalf("err=%v, want 404", err)
	}
}

func TestService_Remove(t *testing.T) {
	t.Parallel()

	svc, _ := newTripService(t, nil)
	ctx := context.Background()

	planned, err := svc.Plan(ctx, PlanTripInput{Title: "Short Hop", Destination: "Porto, Portugal"})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if err := svc.Remove(ctx, planned.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := svc.Get(ctx, planned.ID); err == nil {
		t.Fatalf("Get after Remove succeeded")
	}
	if err := svc.Remove(ctx, planned.ID); err != nil {
		t.Fatalf("Remove(again) = %v, want nil", err)
	}
}

func TestCountryOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"Paris, France", "France"},
		{"  Cusco ,  Peru ", "Peru"},
		{"Iceland", "Iceland"},
		{"San Juan, Puerto Rico, USA", "USA"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CountryOf(c.in); got != c.want {
			t.Fatalf("CountryOf(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func isValidation(err error) bool {
	ae := (*apperr.Error)(nil)
	return errors.As(err, &ae) && ae.Status == 422
}

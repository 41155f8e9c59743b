// Package bookings implements the booking use-cases over the persisted
// booking collection. There is no real reservation provider: the local flow
// confirms immediately, mirroring the simulated booking behavior of the app.
package bookings

import (
	"context"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/apperr"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/collection"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
	clockport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/clock"
)

type Service struct {
	store *collection.Store[domain.Booking]
	clk   clockport.Clock
}

func NewService(store *collection.Store[domain.Booking], clk clockport.Clock) *Service {
	return &Service{store: store, clk: clk}
}

// Book validates and persists a new booking. The local flow confirms
// immediately; a real provider adapter would leave it pending.
func (s *Service) Book(ctx context.Context, in BookInput) (domain.Booking, error) {
	if !domain.ValidBookingCategory(in.Category) {
		return domain.Booking{}, apperr.Validation("invalid category", "category", "must be hotel, car, taxi, or attraction")
	}
	title := domain.NormalizeHumanName(in.Title)
	if title == "" {
		return domain.Booking{}, apperr.Validation("invalid title", "title", "must be non-empty")
	}

	now := s.clk.Now()
	b := domain.Booking{
		Category:  in.Category,
		Title:     title,
		Location:  domain.NormalizeHumanName(in.Location),
		Date:      in.Date.UTC(),
		Status:    domain.BookingStatusConfirmed,
		Price:     in.Price,
		Image:     in.Image,
		Details:   cloneDetails(in.Details),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.store.Add(ctx, b)
}

// List returns all bookings in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.store.All(ctx)
}

func (s *Service) Get(ctx context.Context, id domain.BookingID) (domain.Booking, error) {
	b, ok, err := s.store.Get(ctx, string(id))
	if err != nil {
		return domain.Booking{}, err
	}
	if !ok {
		return domain.Booking{}, &apperr.Error{Status: 404, Code: "BOOKING_NOT_FOUND", Message: "booking not found"}
	}
	return b, nil
}

// Update shallow-merges the patch into the booking. An unmatched identifier
// is a no-op; callers must not rely on an error being raised.
func (s *Service) Update(ctx context.Context, id domain.BookingID, in UpdateBookingInput) error {
	cur, ok, err := s.store.Get(ctx, string(id))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	merged, err := mergeBooking(cur, in)
	if err != nil {
		return err
	}
	merged.UpdatedAt = s.clk.Now()
	return s.store.Update(ctx, string(id), func(domain.Booking) domain.Booking { return merged })
}

// Cancel moves the booking to cancelled. Idempotent; unmatched identifiers
// no-op.
func (s *Service) Cancel(ctx context.Context, id domain.BookingID) error {
	now := s.clk.Now()
	return s.store.Update(ctx, string(id), func(b domain.Booking) domain.Booking {
		if b.Status != domain.BookingStatusCancelled {
			b.Status = domain.BookingStatusCancelled
			b.UpdatedAt = now
		}
		return b
	})
}

// Remove deletes the booking. An unmatched identifier is a no-op.
func (s *Service) Remove(ctx context.Context, id domain.BookingID) error {
	return s.store.Remove(ctx, string(id))
}

func mergeBooking(b domain.Booking, in UpdateBookingInput) (domain.Booking, error) {
	if in.Title.IsSpecified() {
		if in.Title.IsNull() {
			return domain.Booking{}, apperr.Validation("invalid title", "title", "cannot be null")
		}
		title := domain.NormalizeHumanName(in.Title.Value())
		if title == "" {
			return domain.Booking{}, apperr.Validation("invalid title", "title", "must be non-empty")
		}
		b.Title = title
	}
	if in.Location.IsSpecified() && !in.Location.IsNull() {
		b.Location = domain.NormalizeHumanName(in.Location.Value())
	}
	if in.Date.IsSpecified() && !in.Date.IsNull() {
		b.Date = in.Date.Value().UTC()
	}
	if in.Status.IsSpecified() && !in.Status.IsNull() {
		switch in.Status.Value() {
		case domain.BookingStatusConfirmed, domain.BookingStatusPending, domain.BookingStatusCancelled:
			b.Status = in.Status.Value()
		default:
			return domain.Booking{}, apperr.Validation("invalid status", "status", "must be confirmed, pending, or cancelled")
		}
	}
	if in.Price.IsSpecified() && !in.Price.IsNull() {
		b.Price = in.Price.Value()
	}
	if in.Image.IsSpecified() && !in.Image.IsNull() {
		b.Image = in.Image.Value()
	}
	if in.Details.IsSpecified() {
		if in.Details.IsNull() {
			b.Details = nil
		} else {
			b.Details = cloneDetails(in.Details.Value())
		}
	}
	return b, nil
}

func cloneDetails(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// Package saved implements the saved-items (bookmarks) use-cases. Saved
// items reuse catalog identifiers, so the service enforces the at-most-one-
// per-identifier invariant by checking membership before every insert.
package saved

import (
	"context"
	"errors"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/apperr"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/collection"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
	clockport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/clock"
)

type SaveInput struct {
	ID       domain.SavedItemID
	Category domain.SavedCategory
	Title    string
	Location string
	Image    string
	Rating   float64
	Price    *domain.Money
}

type Service struct {
	store *collection.Store[domain.SavedItem]
	clk   clockport.Clock
}

func NewService(store *collection.Store[domain.SavedItem], clk clockport.Clock) *Service {
	return &Service{store: store, clk: clk}
}

// Save bookmarks an item. Saving an already-saved identifier is a no-op, so
// the collection never holds duplicates.
func (s *Service) Save(ctx context.Context, in SaveInput) error {
	if in.ID == "" {
		return apperr.Validation("invalid id", "id", "must be non-empty")
	}
	if !domain.ValidSavedCategory(in.Category) {
		return apperr.Validation("invalid category", "category", "must be destination, hotel, or attraction")
	}
	if s.store.Contains(string(in.ID)) {
		return nil
	}
	item := domain.SavedItem{
		ID:       in.ID,
		Category: in.Category,
		Title:    domain.NormalizeHumanName(in.Title),
		Location: domain.NormalizeHumanName(in.Location),
		Image:    in.Image,
		Rating:   in.Rating,
		Price:    cloneMoneyPtr(in.Price),
		SavedAt:  s.clk.Now(),
	}
	err := s.store.Insert(ctx, item)
	if errors.Is(err, collection.ErrAlreadyExists) {
		return nil
	}
	return err
}

// Unsave removes the bookmark. An unmatched identifier is a no-op.
func (s *Service) Unsave(ctx context.Context, id domain.SavedItemID) error {
	return s.store.Remove(ctx, string(id))
}

// Toggle saves the item when absent and unsaves it when present, returning
// whether the item is saved afterwards.
func (s *Service) Toggle(ctx context.Context, in SaveInput) (bool, error) {
	if s.store.Contains(string(in.ID)) {
		if err := s.store.Remove(ctx, string(in.ID)); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Save(ctx, in); err != nil {
		return false, err
	}
	return true, nil
}

// IsSaved is a pure in-memory membership test, no I/O.
func (s *Service) IsSaved(id domain.SavedItemID) bool {
	return s.store.Contains(string(id))
}

// List returns all saved items in save order.
func (s *Service) List(ctx context.Context) ([]domain.SavedItem, error) {
	return s.store.All(ctx)
}

func cloneMoneyPtr(p *domain.Money) *domain.Money {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

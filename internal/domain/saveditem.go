package domain

import "time"

type SavedCategory string

const (
	SavedCategoryDestination SavedCategory = "destination"
	SavedCategoryHotel       SavedCategory = "hotel"
	SavedCategoryAttraction  SavedCategory = "attraction"
)

// ValidSavedCategory reports whether c is one of the known saved-item categories.
func ValidSavedCategory(c SavedCategory) bool {
	switch c {
	case SavedCategoryDestination, SavedCategoryHotel, SavedCategoryAttraction:
		return true
	default:
		return false
	}
}

// SavedItem is a bookmarked catalog entry (destination, hotel, or attraction).
//
// Invariant: at most one SavedItem per ID exists in the saved collection.
// The collection store does not deduplicate on insert, so callers must check
// membership first (see the saved service).
type SavedItem struct {
	ID       SavedItemID   `json:"id"`
	Category SavedCategory `json:"category"`
	Title    string        `json:"title"`
	Location string        `json:"location"`
	Image    string        `json:"image"`
	Rating   float64       `json:"rating"`
	Price    *Money        `json:"price,omitempty"`

	SavedAt time.Time `json:"savedAt"`
}

// EntityID implements collection.Entity.
func (s SavedItem) EntityID() string { return string(s.ID) }

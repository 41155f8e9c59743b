package domain

import "time"

type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

// ValidTripStatus reports whether s is one of the known trip statuses.
func ValidTripStatus(s TripStatus) bool {
	switch s {
	case TripStatusUpcoming, TripStatusOngoing, TripStatusCompleted:
		return true
	default:
		return false
	}
}

// Money is an amount in a named currency (e.g. 1200.50 USD).
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// TripReview is a user-authored review attached to a completed trip.
type TripReview struct {
	// Rating is a star rating in [1, 5].
	Rating    int       `json:"rating"`
	Text      string    `json:"text,omitempty"`
	PhotoRefs []string  `json:"photoRefs,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Trip is a planned, ongoing, or completed trip. It is the persistence shape:
// whole trip collections are serialized to the durable store as JSON.
type Trip struct {
	ID          TripID     `json:"id"`
	Title       string     `json:"title"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"startDate"` // date-only semantics at the edges
	EndDate     time.Time  `json:"endDate"`   // date-only semantics at the edges
	Status      TripStatus `json:"status"`
	CoverImage  string     `json:"coverImage"`

	Description *string     `json:"description,omitempty"`
	Budget      *Money      `json:"budget,omitempty"`
	Review      *TripReview `json:"review,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID implements collection.Entity.
func (t Trip) EntityID() string { return string(t.ID) }

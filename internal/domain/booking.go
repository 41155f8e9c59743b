package domain

import "time"

type BookingCategory string

const (
	BookingCategoryHotel      BookingCategory = "hotel"
	BookingCategoryCar        BookingCategory = "car"
	BookingCategoryTaxi       BookingCategory = "taxi"
	BookingCategoryAttraction BookingCategory = "attraction"
)

// ValidBookingCategory reports whether c is one of the known booking categories.
func ValidBookingCategory(c BookingCategory) bool {
	switch c {
	case BookingCategoryHotel, BookingCategoryCar, BookingCategoryTaxi, BookingCategoryAttraction:
		return true
	default:
		return false
	}
}

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a reservation made through the app (hotel, car, taxi, attraction).
// Details holds category-specific fields (room type, pickup point, ...) that
// the core does not interpret.
type Booking struct {
	ID       BookingID       `json:"id"`
	Category BookingCategory `json:"category"`
	Title    string          `json:"title"`
	Location string          `json:"location"`
	Date     time.Time       `json:"date"`
	Status   BookingStatus   `json:"status"`
	Price    Money           `json:"price"`
	Image    string          `json:"image"`

	Details map[string]string `json:"details,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID implements collection.Entity.
func (b Booking) EntityID() string { return string(b.ID) }

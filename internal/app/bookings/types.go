package bookings

import (
	"time"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/patch"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
)

type BookInput struct {
	Category domain.BookingCategory
	Title    string
	Location string
	Date     time.Time
	Price    domain.Money
	Image    string

	// Details holds category-specific fields the core does not interpret.
	Details map[string]string
}

// UpdateBookingInput is a shallow-merge patch: omitted fields retain their
// prior values.
type UpdateBookingInput struct {
	// Title and Location are optional and cannot be null.
	Title    patch.Optional[string]
	Location patch.Optional[string]

	Date   patch.Optional[time.Time]
	Status patch.Optional[domain.BookingStatus]
	Price  patch.Optional[domain.Money]
	Image  patch.Optional[string]

	Details patch.Optional[map[string]string] // null clears
}

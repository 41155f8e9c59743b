package trips

import (
	"time"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/patch"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
)

type PlanTripInput struct {
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	CoverImage  string

	Description *string
	Budget      *domain.Money
}

// UpdateTripInput is a shallow-merge patch: omitted fields retain their prior
// values, null clears the nullable ones.
type UpdateTripInput struct {
	// Title and Destination are optional and cannot be null.
	Title       patch.Optional[string]
	Destination patch.Optional[string]

	StartDate  patch.Optional[time.Time]
	EndDate    patch.Optional[time.Time]
	Status     patch.Optional[domain.TripStatus]
	CoverImage patch.Optional[string]

	Description patch.Optional[string]       // null clears
	Budget      patch.Optional[domain.Money] // null clears
}

type ReviewInput struct {
	// Rating is a star rating in [1, 5].
	Rating    int
	Text      string
	PhotoRefs []string
}

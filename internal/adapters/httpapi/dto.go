package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/catalog"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/patch"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
)

// Wire shapes. Dates use date-only encoding at the edges; PATCH bodies use
// tri-state nullable fields so "omitted", "null", and "value" stay distinct.

type moneyJSON struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type reviewJSON struct {
	Rating    int       `json:"rating"`
	Text      string    `json:"text,omitempty"`
	PhotoRefs []string  `json:"photoRefs,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type tripJSON struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"startDate"`
	EndDate     openapi_types.Date `json:"endDate"`
	Status      string             `json:"status"`
	CoverImage  string             `json:"coverImage"`
	Description *string            `json:"description,omitempty"`
	Budget      *moneyJSON         `json:"budget,omitempty"`
	Review      *reviewJSON        `json:"review,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type bookingJSON struct {
	ID        string            `json:"id"`
	Category  string            `json:"category"`
	Title     string            `json:"title"`
	Location  string            `json:"location"`
	Date      openapi_types.Date `json:"date"`
	Status    string            `json:"status"`
	Price     moneyJSON         `json:"price"`
	Image     string            `json:"image"`
	Details   map[string]string `json:"details,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type savedItemJSON struct {
	ID       string     `json:"id"`
	Category string     `json:"category"`
	Title    string     `json:"title"`
	Location string     `json:"location"`
	Image    string     `json:"image"`
	Rating   float64    `json:"rating"`
	Price    *moneyJSON `json:"price,omitempty"`
	SavedAt  time.Time  `json:"savedAt"`
}

type userJSON struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	AvatarImage      *string  `json:"avatarImage,omitempty"`
	CountriesVisited int      `json:"countriesVisited"`
	TripsCompleted   int      `json:"tripsCompleted"`
	VisitedCountries []string `json:"visitedCountries"`
}

type catalogEntryJSON struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Location    string     `json:"location"`
	Image       string     `json:"image"`
	Rating      float64    `json:"rating"`
	Price       *moneyJSON `json:"price,omitempty"`
	Description string     `json:"description,omitempty"`
	Featured    bool       `json:"featured"`
}

type planTripRequest struct {
	Title       string             `json:"title"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"startDate"`
	EndDate     openapi_types.Date `json:"endDate"`
	CoverImage  string             `json:"coverImage"`
	Description *string            `json:"description,omitempty"`
	Budget      *moneyJSON         `json:"budget,omitempty"`
}

type updateTripRequest struct {
	Title       nullable.Nullable[string]             `json:"title,omitempty"`
	Destination nullable.Nullable[string]             `json:"destination,omitempty"`
	StartDate   nullable.Nullable[openapi_types.Date] `json:"startDate,omitempty"`
	EndDate     nullable.Nullable[openapi_types.Date] `json:"endDate,omitempty"`
	Status      nullable.Nullable[string]             `json:"status,omitempty"`
	CoverImage  nullable.Nullable[string]             `json:"coverImage,omitempty"`
	Description nullable.Nullable[string]             `json:"description,omitempty"`
	Budget      nullable.Nullable[moneyJSON]          `json:"budget,omitempty"`
}

type reviewRequest struct {
	Rating    int      `json:"rating"`
	Text      string   `json:"text,omitempty"`
	PhotoRefs []string `json:"photoRefs,omitempty"`
}

type createBookingRequest struct {
	Category string             `json:"category"`
	Title    string             `json:"title"`
	Location string             `json:"location"`
	Date     openapi_types.Date `json:"date"`
	Price    moneyJSON          `json:"price"`
	Image    string             `json:"image"`
	Details  map[string]string  `json:"details,omitempty"`
}

type updateBookingRequest struct {
	Title    nullable.Nullable[string]             `json:"title,omitempty"`
	Location nullable.Nullable[string]             `json:"location,omitempty"`
	Date     nullable.Nullable[openapi_types.Date] `json:"date,omitempty"`
	Status   nullable.Nullable[string]             `json:"status,omitempty"`
	Price    nullable.Nullable[moneyJSON]          `json:"price,omitempty"`
	Image    nullable.Nullable[string]             `json:"image,omitempty"`
	Details  nullable.Nullable[map[string]string]  `json:"details,omitempty"`
}

type saveItemRequest struct {
	ID       string     `json:"id"`
	Category string     `json:"category"`
	Title    string     `json:"title"`
	Location string     `json:"location"`
	Image    string     `json:"image"`
	Rating   float64    `json:"rating"`
	Price    *moneyJSON `json:"price,omitempty"`
}

type signInRequest struct {
	Email    openapi_types.Email `json:"email"`
	Password string              `json:"password"`
}

type registerRequest struct {
	Email     openapi_types.Email `json:"email"`
	Password  string              `json:"password"`
	FirstName string              `json:"firstName,omitempty"`
	LastName  string              `json:"lastName,omitempty"`
}

type updateProfileRequest struct {
	FirstName   nullable.Nullable[string]              `json:"firstName,omitempty"`
	LastName    nullable.Nullable[string]              `json:"lastName,omitempty"`
	Email       nullable.Nullable[openapi_types.Email] `json:"email,omitempty"`
	AvatarImage nullable.Nullable[string]              `json:"avatarImage,omitempty"`
}

type addVisitedCountryRequest struct {
	Country string `json:"country"`
}

// opt converts a wire nullable field into the app-layer tri-state.
func opt[T any](n nullable.Nullable[T]) patch.Optional[T] {
	if !n.IsSpecified() {
		return patch.Unspecified[T]()
	}
	if n.IsNull() {
		return patch.Null[T]()
	}
	return patch.Some(n.MustGet())
}

// optMap is opt with a value conversion (wire type -> domain type).
func optMap[T, U any](n nullable.Nullable[T], f func(T) U) patch.Optional[U] {
	if !n.IsSpecified() {
		return patch.Unspecified[U]()
	}
	if n.IsNull() {
		return patch.Null[U]()
	}
	return patch.Some(f(n.MustGet()))
}

func toMoneyJSON(m domain.Money) moneyJSON {
	return moneyJSON{Amount: m.Amount, Currency: m.Currency}
}

func toMoneyJSONPtr(m *domain.Money) *moneyJSON {
	if m == nil {
		return nil
	}
	v := toMoneyJSON(*m)
	return &v
}

func fromMoneyJSON(m moneyJSON) domain.Money {
	return domain.Money{Amount: m.Amount, Currency: m.Currency}
}

func fromMoneyJSONPtr(m *moneyJSON) *domain.Money {
	if m == nil {
		return nil
	}
	v := fromMoneyJSON(*m)
	return &v
}

func toTripJSON(t domain.Trip) tripJSON {
	out := tripJSON{
		ID:          string(t.ID),
		Title:       t.Title,
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		Status:      string(t.Status),
		CoverImage:  t.CoverImage,
		Description: t.Description,
		Budget:      toMoneyJSONPtr(t.Budget),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Review != nil {
		out.Review = &reviewJSON{
			Rating:    t.Review.Rating,
			Text:      t.Review.Text,
			PhotoRefs: t.Review.PhotoRefs,
			CreatedAt: t.Review.CreatedAt,
		}
	}
	return out
}

func toBookingJSON(b domain.Booking) bookingJSON {
	return bookingJSON{
		ID:        string(b.ID),
		Category:  string(b.Category),
		Title:     b.Title,
		Location:  b.Location,
		Date:      openapi_types.Date{Time: b.Date},
		Status:    string(b.Status),
		Price:     toMoneyJSON(b.Price),
		Image:     b.Image,
		Details:   b.Details,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toSavedItemJSON(it domain.SavedItem) savedItemJSON {
	return savedItemJSON{
		ID:       string(it.ID),
		Category: string(it.Category),
		Title:    it.Title,
		Location: it.Location,
		Image:    it.Image,
		Rating:   it.Rating,
		Price:    toMoneyJSONPtr(it.Price),
		SavedAt:  it.SavedAt,
	}
}

func toUserJSON(u domain.User) userJSON {
	return userJSON{
		ID:               string(u.ID),
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		AvatarImage:      u.AvatarImage,
		CountriesVisited: u.CountriesVisited,
		TripsCompleted:   u.TripsCompleted,
		VisitedCountries: u.VisitedCountries,
	}
}

func toCatalogEntryJSON(e catalog.Entry) catalogEntryJSON {
	return catalogEntryJSON{
		ID:          e.ID,
		Category:    string(e.Category),
		Title:       e.Title,
		Location:    e.Location,
		Image:       e.Image,
		Rating:      e.Rating,
		Price:       toMoneyJSONPtr(e.Price),
		Description: e.Description,
		Featured:    e.Featured,
	}
}

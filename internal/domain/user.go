package domain

import "time"

// User is the single signed-in user record. Structurally it is a one-record
// collection: the durable store holds "the" user or none.
//
// Invariant: CountriesVisited always equals len(VisitedCountries), and a
// country appears in VisitedCountries at most once. The session service
// protects this actively; it is not merely assumed.
type User struct {
	ID        UserID `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	AvatarImage *string `json:"avatarImage,omitempty"`

	CountriesVisited int      `json:"countriesVisited"`
	TripsCompleted   int      `json:"tripsCompleted"`
	VisitedCountries []string `json:"visitedCountries"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasVisited reports whether country is already recorded, comparing
// normalized names case-insensitively.
func (u User) HasVisited(country string) bool {
	want := NormalizeCountryName(country)
	for _, c := range u.VisitedCountries {
		if EqualFoldCountry(c, want) {
			return true
		}
	}
	return false
}

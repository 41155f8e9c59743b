package session

import "github.com/Wanderlust-Mobile/travel-companion-api/internal/app/patch"

// UpdateProfileInput is a shallow-merge patch over the session record.
// Omitted fields retain their prior values.
type UpdateProfileInput struct {
	// FirstName and LastName are optional and cannot be null.
	FirstName patch.Optional[string]
	LastName  patch.Optional[string]

	// Email is optional and cannot be null; it must stay well-formed.
	Email patch.Optional[string]

	// AvatarImage may be set to null to clear the profile picture.
	AvatarImage patch.Optional[string]
}

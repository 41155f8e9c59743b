package authbackend

import (
	"context"
	"errors"
)

// ErrInvalidInput indicates malformed credentials or registration input.
// The session service maps it to a validation error; it never changes
// authentication state.
var ErrInvalidInput = errors.New("authbackend: invalid input")

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Profile is the provider-seeded identity returned on a successful sign-in
// or registration.
type Profile struct {
	// Subject is the provider-unique identifier for the account.
	Subject   string
	Email     string
	FirstName string
	LastName  string

	AvatarImage *string
}

// Backend authenticates the user. Implementations decide what verification
// means: the local adapter accepts any well-formed input, a real provider
// would be swapped in behind this interface. Simulated latency belongs in
// adapters, never in the session service.
type Backend interface {
	SignIn(ctx context.Context, c Credentials) (Profile, error)
	Register(ctx context.Context, r Registration) (Profile, error)
}

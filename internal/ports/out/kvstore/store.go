package kvstore

import "context"

// Well-known keys. One key per persisted collection plus the session record
// and the one-shot onboarding flag.
const (
	KeyTrips      = "trips"
	KeyBookings   = "bookings"
	KeySavedItems = "savedItems"
	KeyUser       = "user"
	KeyOnboarding = "onboardingComplete"
)

// Store is the durable key-value persistence backend: an asynchronous,
// durable, string-keyed store. Values are JSON-encoded by the caller; the
// backend treats them as opaque.
//
// Get returns ok=false (not an error) when the key is absent. All operations
// may fail with an error wrapping ErrIO.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

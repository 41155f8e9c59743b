package kvstore

import "errors"

// ErrIO indicates a durable-store read/write failure. Adapters wrap their
// backend-specific errors with it so callers can match via errors.Is.
var ErrIO = errors.New("kvstore: i/o failure")

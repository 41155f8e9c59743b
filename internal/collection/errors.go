package collection

import "errors"

var (
	// ErrCorruptData indicates a stored value was present but not parseable.
	// Load recovers locally by substituting an empty collection and logging;
	// the sentinel exists so tests and diagnostics can match the condition.
	ErrCorruptData = errors.New("collection: corrupt stored data")

	// ErrNotFound is returned by Update/Remove in strict mode when the
	// identifier does not match any record. In the default mode those
	// operations are defined as no-ops and never return it.
	ErrNotFound = errors.New("collection: record not found")

	// ErrAlreadyExists is returned by Insert when a record with the same
	// identifier is already present.
	ErrAlreadyExists = errors.New("collection: record already exists")
)

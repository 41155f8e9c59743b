package domain

// UserID identifies the signed-in user record. There is at most one user
// record in local storage at any time.
type UserID string

// TripID is an internal identifier for a trip record.
type TripID string

// BookingID is an internal identifier for a booking record.
type BookingID string

// SavedItemID identifies a saved item. Unlike trip/booking IDs it is usually
// reused from the catalog entry being saved rather than generated at save time.
type SavedItemID string

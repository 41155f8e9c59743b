// Package apperr defines the application-layer error shape shared by the app
// services and mapped to HTTP responses by the API adapter.
package apperr

// Error carries a status, a stable machine-readable code, and optional
// per-field details.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// Validation builds the common 422 validation error with one offending field.
func Validation(message, field, detail string) *Error {
	return &Error{
		Status:  422,
		Code:    "VALIDATION_ERROR",
		Message: message,
		Details: map[string]any{field: detail},
	}
}

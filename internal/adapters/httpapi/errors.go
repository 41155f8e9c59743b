package httpapi

import (
	"errors"
	"net/http"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/apperr"
	kvstoreport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string, details map[string]any) {
	s.writeJSON(w, status, errorBody{Code: code, Message: message, Details: details})
}

// writeServiceError maps application errors onto the wire shape. Durable-
// store failures become 503s: the in-memory view may lag, nothing is fatal.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		s.writeError(w, ae.Status, ae.Code, ae.Message, ae.Details)
		return
	}
	if errors.Is(err, kvstoreport.ErrIO) {
		s.writeError(w, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "durable storage is unavailable", nil)
		return
	}
	s.Log.Error("unhandled service error", "error", err)
	s.writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

func (s *Server) writeBadBody(w http.ResponseWriter, err error) {
	s.writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", map[string]any{"body": err.Error()})
}

// Package httpapi is the local HTTP surface over the app services. It is a
// thin adapter: handlers decode and validate request shapes, delegate to the
// services, and map application errors to responses. The app shell in
// development talks to it; no remote backend exists.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/bookings"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/catalog"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/saved"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/session"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/trips"
)

type Server struct {
	Trips    *trips.Service
	Bookings *bookings.Service
	Saved    *saved.Service
	Session  *session.Service
	Catalog  *catalog.Catalog

	Log *slog.Logger
}

func NewServer(tripsSvc *trips.Service, bookingsSvc *bookings.Service, savedSvc *saved.Service, sessionSvc *session.Service, cat *catalog.Catalog, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		Trips:    tripsSvc,
		Bookings: bookingsSvc,
		Saved:    savedSvc,
		Session:  sessionSvc,
		Catalog:  cat,
		Log:      log,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Error("encode response", "error", err)
	}
}

// decodeJSON rejects bodies with unknown fields so client typos surface as
// 422s instead of silently dropped fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/bookings"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
)

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := s.Bookings.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	// Category filtering happens here, over the full in-memory sequence;
	// the store exposes no query surface.
	if cat := r.URL.Query().Get("category"); cat != "" {
		filtered := make([]domain.Booking, 0, len(bs))
		for _, b := range bs {
			if string(b.Category) == cat {
				filtered = append(filtered, b)
			}
		}
		bs = filtered
	}
	out := make([]bookingJSON, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingJSON(b))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"bookings": out})
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadBody(w, err)
		return
	}
	b, err := s.Bookings.Book(r.Context(), bookings.BookInput{
		Category: domain.BookingCategory(req.Category),
		Title:    req.Title,
		Location: req.Location,
		Date:     req.Date.Time,
		Price:    fromMoneyJSON(req.Price),
		Image:    req.Image,
		Details:  req.Details,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toBookingJSON(b))
}

func (s *Server) getBooking(w http.ResponseWriter, r *http.Request) {
	id := domain.BookingID(chi.URLParam(r, "bookingID"))
	b, err := s.Bookings.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toBookingJSON(b))
}

func (s *Server) updateBooking(w http.ResponseWriter, r *http.Request) {
	id := domain.BookingID(chi.URLParam(r, "bookingID"))
	var req updateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadBody(w, err)
		return
	}
	in := bookings.UpdateBookingInput{
		Title:    opt(req.Title),
		Location: opt(req.Location),
		Date:     optMap(req.Date, func(d openapi_types.Date) time.Time { return d.Time }),
		Status:   optMap(req.Status, func(v string) domain.BookingStatus { return domain.BookingStatus(v) }),
		Price:    optMap(req.Price, fromMoneyJSON),
		Image:    opt(req.Image),
		Details:  opt(req.Details),
	}
	if err := s.Bookings.Update(r.Context(), id, in); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeBooking(w http.ResponseWriter, r *http.Request) {
	id := domain.BookingID(chi.URLParam(r, "bookingID"))
	if err := s.Bookings.Remove(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id := domain.BookingID(chi.URLParam(r, "bookingID"))
	if err := s.Bookings.Cancel(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

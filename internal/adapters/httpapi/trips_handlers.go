package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/trips"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
)

func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	ts, err := s.Trips.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	out := make([]tripJSON, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTripJSON(t))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"trips": out})
}

func (s *Server) planTrip(w http.ResponseWriter, r *http.Request) {
	var req planTripRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadBody(w, err)
		return
	}
	t, err := s.Trips.Plan(r.Context(), trips.PlanTripInput{
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		CoverImage:  req.CoverImage,
		Description: req.Description,
		Budget:      fromMoneyJSONPtr(req.Budget),
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toTripJSON(t))
}

func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id := domain.TripID(chi.URLParam(r, "tripID"))
	t, err := s.Trips.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toTripJSON(t))
}

func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	id := domain.TripID(chi.URLParam(r, "tripID"))
	var req updateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadBody(w, err)
		return
	}
	in := trips.UpdateTripInput{
		Title:       opt(req.Title),
		Destination: opt(req.Destination),
		StartDate:   optMap(req.StartDate, func(d openapi_types.Date) time.Time { return d.Time }),
		EndDate:     optMap(req.EndDate, func(d openapi_types.Date) time.Time { return d.Time }),
		Status:      optMap(req.Status, func(v string) domain.TripStatus { return domain.TripStatus(v) }),
		CoverImage:  opt(req.CoverImage),
		Description: opt(req.Description),
		Budget:      optMap(req.Budget, fromMoneyJSON),
	}
	if err := s.Trips.Update(r.Context(), id, in); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeTrip(w http.ResponseWriter, r *http.Request) {
	id := domain.TripID(chi.URLParam(r, "tripID"))
	if err := s.Trips.Remove(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) completeTrip(w http.ResponseWriter, r *http.Request) {
	id := domain.TripID(chi.URLParam(r, "tripID"))
	t, err := s.Trips.Complete(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toTripJSON(t))
}

func (s *Server) addTripReview(w http.ResponseWriter, r *http.Request) {
	id := domain.TripID(chi.URLParam(r, "tripID"))
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadBody(w, err)
		return
	}
	in := trips.ReviewInput{Rating: req.Rating, Text: req.Text, PhotoRefs: req.PhotoRefs}
	if err := s.Trips.AddReview(r.Context(), id, in); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the API HTTP router: baseline middleware, a health
// endpoint for infra checks, and the resource routes delegating to Server.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(NewSlogLogger(s.Log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.listTrips)
		r.Post("/", s.planTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.getTrip)
			r.Patch("/", s.updateTrip)
			r.Delete("/", s.removeTrip)
			r.Post("/complete", s.completeTrip)
			r.Put("/review", s.addTripReview)
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", s.listBookings)
		r.Post("/", s.createBooking)
		r.Route("/{bookingID}", func(r chi.Router) {
			r.Get("/", s.getBooking)
			r.Patch("/", s.updateBooking)
			r.Delete("/", s.removeBooking)
			r.Post("/cancel", s.cancelBooking)
		})
	})

	r.Route("/saved", func(r chi.Router) {
		r.Get("/", s.listSaved)
		r.Post("/", s.saveItem)
		r.Post("/toggle", s.toggleSaved)
		r.Delete("/{itemID}", s.unsaveItem)
	})

	r.Route("/session", func(r chi.Router) {
		r.Get("/", s.currentSession)
		r.Delete("/", s.signOut)
		r.Patch("/", s.updateProfile)
		r.Post("/sign-in", s.signIn)
		r.Post("/register", s.register)
		r.Post("/visited-countries", s.addVisitedCountry)
	})

	r.Route("/onboarding", func(r chi.Router) {
		r.Get("/", s.onboardingStatus)
		r.Post("/complete", s.completeOnboarding)
	})

	r.Route("/explore", func(r chi.Router) {
		r.Get("/", s.explore)
		r.Get("/featured", s.exploreFeatured)
		r.Get("/{entryID}", s.exploreEntry)
	})

	return r
}

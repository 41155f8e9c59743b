package httpapi

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/session"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/authbackend"
)

func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) {
	u, ok, err := s.Session.Current(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "NOT_SIGNED_IN", "no active session", nil)
		return
	}
	s.writeJSON(w, http.StatusOK, toUserJSON(u))
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadBody(w, err)
		return
	}
	u, err := s.Session.SignIn(r.Context(), authbackend.Credentials{
		Email:    string(req.Email),
		Password: req.Password,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toUserJSON(u))
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadBody(w, err)
		return
	}
	u, err := s.Session.Register(r.Context(), authbackend.Registration{
		Email:     string(req.Email),
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toUserJSON(u))
}

func (s *Server) signOut(w http.ResponseWriter, r *http.Request) {
	if err := s.Session.SignOut(r.Context()); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadBody(w, err)
		return
	}
	in := session.UpdateProfileInput{
		FirstName:   opt(req.FirstName),
		LastName:    opt(req.LastName),
		Email:       optMap(req.Email, func(e openapi_types.Email) string { return string(e) }),
		AvatarImage: opt(req.AvatarImage),
	}
	if err := s.Session.UpdateProfile(r.Context(), in); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addVisitedCountry(w http.ResponseWriter, r *http.Request) {
	var req addVisitedCountryRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadBody(w, err)
		return
	}
	if err := s.Session.AddVisitedCountry(r.Context(), req.Country); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) onboardingStatus(w http.ResponseWriter, r *http.Request) {
	done, err := s.Session.HasCompletedOnboarding(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"completed": done})
}

func (s *Server) completeOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := s.Session.CompleteOnboarding(r.Context()); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

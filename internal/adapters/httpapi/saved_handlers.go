package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/saved"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
)

func (s *Server) listSaved(w http.ResponseWriter, r *http.Request) {
	items, err := s.Saved.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	out := make([]savedItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, toSavedItemJSON(it))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (s *Server) saveItem(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeSaveInput(r)
	if err != nil {
		s.writeBadBody(w, err)
		return
	}
	if err := s.Saved.Save(r.Context(), in); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toggleSaved(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeSaveInput(r)
	if err != nil {
		s.writeBadBody(w, err)
		return
	}
	savedNow, err := s.Saved.Toggle(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"saved": savedNow})
}

func (s *Server) unsaveItem(w http.ResponseWriter, r *http.Request) {
	id := domain.SavedItemID(chi.URLParam(r, "itemID"))
	if err := s.Saved.Unsave(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeSaveInput accepts either a full item payload or just {"id": ...}
// naming a catalog entry, in which case the entry supplies the fields.
func (s *Server) decodeSaveInput(r *http.Request) (saved.SaveInput, error) {
	var req saveItemRequest
	if err := decodeJSON(r, &req); err != nil {
		return saved.SaveInput{}, err
	}
	if req.Title == "" && req.Category == "" {
		if e, ok := s.Catalog.Get(req.ID); ok {
			return saved.SaveInput{
				ID:       domain.SavedItemID(e.ID),
				Category: e.Category,
				Title:    e.Title,
				Location: e.Location,
				Image:    e.Image,
				Rating:   e.Rating,
				Price:    e.Price,
			}, nil
		}
	}
	return saved.SaveInput{
		ID:       domain.SavedItemID(req.ID),
		Category: domain.SavedCategory(req.Category),
		Title:    req.Title,
		Location: req.Location,
		Image:    req.Image,
		Rating:   req.Rating,
		Price:    fromMoneyJSONPtr(req.Price),
	}, nil
}

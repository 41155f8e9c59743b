package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/catalog"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
)

func (s *Server) explore(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var entries []catalog.Entry
	switch {
	case q.Get("q") != "":
		entries = s.Catalog.Search(q.Get("q"))
	case q.Get("category") != "":
		cat := domain.SavedCategory(q.Get("category"))
		if !domain.ValidSavedCategory(cat) {
			s.writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid category", map[string]any{"category": "must be destination, hotel, or attraction"})
			return
		}
		entries = s.Catalog.ByCategory(cat)
	default:
		entries = s.Catalog.All()
	}
	s.writeCatalogList(w, entries)
}

func (s *Server) exploreFeatured(w http.ResponseWriter, r *http.Request) {
	s.writeCatalogList(w, s.Catalog.Featured())
}

func (s *Server) exploreEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "entryID")
	e, ok := s.Catalog.Get(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "ENTRY_NOT_FOUND", "no such catalog entry", nil)
		return
	}
	out := toCatalogEntryJSON(e)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"entry": out,
		"saved": s.Saved.IsSaved(domain.SavedItemID(e.ID)),
	})
}

func (s *Server) writeCatalogList(w http.ResponseWriter, entries []catalog.Entry) {
	out := make([]catalogEntryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, toCatalogEntryJSON(e))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

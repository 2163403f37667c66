package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
	"github.com/nroberts/museums-of-london/backend/internal/service"
)

// ListMuseums handles GET /museums.
// Supports ?category=, ?free_only= (bool), and ?search= query parameters.
// Omitted or empty parameters skip the corresponding filter.
func (s *Server) ListMuseums(w http.ResponseWriter, r *http.Request) {
	q := service.MuseumQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	if v := r.URL.Query().Get("free_only"); v != "" {
		freeOnly, err := strconv.ParseBool(v)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "free_only must be a boolean")
			return
		}
		q.FreeOnly = freeOnly
	}

	writeJSON(w, http.StatusOK, s.museums.Query(q))
}

// FeaturedMuseums handles GET /museums/featured.
func (s *Server) FeaturedMuseums(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.museums.Featured())
}

// MuseumCategories handles GET /museums/categories.
func (s *Server) MuseumCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.museums.Categories())
}

// GetMuseum handles GET /museums/{id}.
func (s *Server) GetMuseum(w http.ResponseWriter, r *http.Request) {
	museum, err := s.museums.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Museum not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, museum)
}

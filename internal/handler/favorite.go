package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

// AddFavorite handles POST /favorites/{id}.
// Adding an already-favorited museum is not an error: the existing record's
// id is returned with an "Already in favorites" message.
func (s *Server) AddFavorite(w http.ResponseWriter, r *http.Request) {
	result, err := s.favorites.Add(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Museum not found")
			return
		}
		writeInternalError(w, err)
		return
	}

	message := "Added to favorites"
	if result.AlreadyExists {
		message = "Already in favorites"
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message, "id": result.ID})
}

// RemoveFavorite handles DELETE /favorites/{id}.
func (s *Server) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := s.favorites.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Favorite not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Removed from favorites"})
}

// ListFavorites handles GET /favorites. The response is the full museum
// records, not the join records.
func (s *Server) ListFavorites(w http.ResponseWriter, r *http.Request) {
	museums, err := s.favorites.List(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, museums)
}

// CheckFavorite handles GET /favorites/check/{id}.
// An unknown museum id yields false, not an error.
func (s *Server) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	isFav, err := s.favorites.IsFavorite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_favorite": isFav})
}

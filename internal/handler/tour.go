package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

// createCustomTourRequest is the body for POST /tours/custom.
type createCustomTourRequest struct {
	Name      string   `json:"name"`
	MuseumIDs []string `json:"museum_ids"`
}

// ListTours handles GET /tours.
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tours.ListTours())
}

// GetTour handles GET /tours/{id}.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request) {
	tour, err := s.tours.GetTour(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Tour not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tour)
}

// CreateCustomTour handles POST /tours/custom.
// A tour referencing any unknown museum id is rejected with 400 and nothing
// is persisted.
func (s *Server) CreateCustomTour(w http.ResponseWriter, r *http.Request) {
	var req createCustomTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tour, err := s.tours.CreateCustom(r.Context(), req.Name, req.MuseumIDs)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeDetail(w, http.StatusBadRequest, validationMessage(err))
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tour)
}

// ListCustomTours handles GET /tours/custom/list.
func (s *Server) ListCustomTours(w http.ResponseWriter, r *http.Request) {
	tours, err := s.tours.ListCustom(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tours)
}

// DeleteCustomTour handles DELETE /tours/custom/{id}.
func (s *Server) DeleteCustomTour(w http.ResponseWriter, r *http.Request) {
	if err := s.tours.DeleteCustom(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Tour not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Tour deleted"})
}

// validationMessage extracts the human-readable part of a wrapped
// domain.ErrValidation, e.g.
// "validation error: museum 999 not found" → "museum 999 not found".
func validationMessage(err error) string {
	msg := err.Error()
	const prefix = "validation error: "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

// verifyRequest is the body for POST /admin/verify.
type verifyRequest struct {
	PIN string `json:"pin"`
}

// museumRequest carries the writable museum fields for admin create/update.
// Id and created_at are never client-supplied. Rating defaults to 4.5 and
// featured to false when omitted.
type museumRequest struct {
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	ShortDescription string                 `json:"short_description"`
	Address          string                 `json:"address"`
	Latitude         float64                `json:"latitude"`
	Longitude        float64                `json:"longitude"`
	ImageURL         string                 `json:"image_url"`
	Category         string                 `json:"category"`
	FreeEntry        bool                   `json:"free_entry"`
	OpeningHours     string                 `json:"opening_hours"`
	Website          *string                `json:"website"`
	Phone            *string                `json:"phone"`
	Transport        []domain.TransportLink `json:"transport"`
	NearbyEateries   []domain.NearbyEatery  `json:"nearby_eateries"`
	Featured         bool                   `json:"featured"`
	Rating           *float64               `json:"rating"`
}

// toMuseum maps the request onto a domain.Museum, applying defaults and
// normalizing nil lists. ID and CreatedAt are left for the service to fill.
func (req museumRequest) toMuseum() domain.Museum {
	m := domain.Museum{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Address:          req.Address,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		ImageURL:         req.ImageURL,
		Category:         req.Category,
		FreeEntry:        req.FreeEntry,
		OpeningHours:     req.OpeningHours,
		Website:          req.Website,
		Phone:            req.Phone,
		Transport:        req.Transport,
		NearbyEateries:   req.NearbyEateries,
		Featured:         req.Featured,
		Rating:           4.5,
	}
	if req.Rating != nil {
		m.Rating = *req.Rating
	}
	m.EnsureLists()
	return m
}

// VerifyAdmin handles POST /admin/verify.
func (s *Server) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.admin.Verify(req.PIN); err != nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid PIN")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "PIN verified"})
}

// CreateMuseum handles POST /admin/museums?pin=.
func (s *Server) CreateMuseum(w http.ResponseWriter, r *http.Request) {
	var req museumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.admin.Create(r.Context(), req.toMuseum(), r.URL.Query().Get("pin"))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "Invalid PIN")
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Museum created",
		"id":      created.ID,
		"museum":  created,
	})
}

// UpdateMuseum handles PUT /admin/museums/{id}?pin=.
// The update is a full field replacement, never a partial patch.
func (s *Server) UpdateMuseum(w http.ResponseWriter, r *http.Request) {
	var req museumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.admin.Update(r.Context(), chi.URLParam(r, "id"), req.toMuseum(), r.URL.Query().Get("pin"))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "Invalid PIN")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Museum not found")
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Museum updated",
		"museum":  updated,
	})
}

// DeleteMuseum handles DELETE /admin/museums/{id}?pin=.
// Favorites and custom tours referencing the museum are left dangling; they
// resolve to silent omission, not errors.
func (s *Server) DeleteMuseum(w http.ResponseWriter, r *http.Request) {
	err := s.admin.Delete(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("pin"))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "Invalid PIN")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Museum not found")
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Museum deleted"})
}

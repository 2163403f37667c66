// Package handler implements the HTTP handlers for the Museums of London API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (museum.go, favorite.go, tour.go, admin.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
	"github.com/nroberts/museums-of-london/backend/internal/service"
)

// MuseumServicer defines the catalogue query operations the museum handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the service layer.
type MuseumServicer interface {
	Query(q service.MuseumQuery) []domain.Museum
	Featured() []domain.Museum
	Categories() []string
	Get(id string) (domain.Museum, error)
}

// FavoriteServicer defines the favorites ledger operations the handlers
// depend on.
type FavoriteServicer interface {
	Add(ctx context.Context, museumID string) (service.AddResult, error)
	Remove(ctx context.Context, museumID string) error
	List(ctx context.Context) ([]domain.Museum, error)
	IsFavorite(ctx context.Context, museumID string) (bool, error)
}

// TourServicer defines the tour operations the handlers depend on.
type TourServicer interface {
	ListTours() []domain.ResolvedTour
	GetTour(id string) (domain.ResolvedTour, error)
	CreateCustom(ctx context.Context, name string, museumIDs []string) (domain.ResolvedCustomTour, error)
	ListCustom(ctx context.Context) ([]domain.ResolvedCustomTour, error)
	DeleteCustom(ctx context.Context, id string) error
}

// AdminServicer defines the gated mutation operations the admin handlers
// depend on.
type AdminServicer interface {
	Verify(pin string) error
	Create(ctx context.Context, m domain.Museum, pin string) (domain.Museum, error)
	Update(ctx context.Context, id string, m domain.Museum, pin string) (domain.Museum, error)
	Delete(ctx context.Context, id string, pin string) error
}

// Server holds the service dependencies for all API endpoints.
type Server struct {
	museums   MuseumServicer
	favorites FavoriteServicer
	tours     TourServicer
	admin     AdminServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(museums MuseumServicer, favorites FavoriteServicer, tours TourServicer, admin AdminServicer) *Server {
	return &Server{museums: museums, favorites: favorites, tours: tours, admin: admin}
}

// Routes returns the chi router for the API surface. Mount it under /api;
// all paths here are relative to that prefix. Static segments (featured,
// categories, custom) are matched by chi before the {id} wildcards.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.Root)

	r.Get("/museums", s.ListMuseums)
	r.Get("/museums/featured", s.FeaturedMuseums)
	r.Get("/museums/categories", s.MuseumCategories)
	r.Get("/museums/{id}", s.GetMuseum)

	r.Get("/favorites", s.ListFavorites)
	r.Post("/favorites/{id}", s.AddFavorite)
	r.Delete("/favorites/{id}", s.RemoveFavorite)
	r.Get("/favorites/check/{id}", s.CheckFavorite)

	r.Get("/tours", s.ListTours)
	r.Post("/tours/custom", s.CreateCustomTour)
	r.Get("/tours/custom/list", s.ListCustomTours)
	r.Delete("/tours/custom/{id}", s.DeleteCustomTour)
	r.Get("/tours/{id}", s.GetTour)

	r.Post("/admin/verify", s.VerifyAdmin)
	r.Post("/admin/museums", s.CreateMuseum)
	r.Put("/admin/museums/{id}", s.UpdateMuseum)
	r.Delete("/admin/museums/{id}", s.DeleteMuseum)

	return r
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nroberts/museums-of-london/backend/internal/catalogue"
	"github.com/nroberts/museums-of-london/backend/internal/domain"
	"github.com/nroberts/museums-of-london/backend/internal/repo"
)

// customTourPageSize caps how many custom tours a single listing reads.
const customTourPageSize = 100

// TourService resolves curated walking tours against the catalogue and
// manages the user-authored custom tour ledger.
type TourService struct {
	catalogue *catalogue.Store
	tours     repo.CustomTourRepo
}

// NewTourService constructs a TourService over the given catalogue and repo.
func NewTourService(c *catalogue.Store, tours repo.CustomTourRepo) *TourService {
	return &TourService{catalogue: c, tours: tours}
}

// ListTours returns all predefined walking tours with museums resolved,
// in definition order.
func (s *TourService) ListTours() []domain.ResolvedTour {
	defs := s.catalogue.Tours()
	out := make([]domain.ResolvedTour, len(defs))
	for i, t := range defs {
		out[i] = domain.ResolvedTour{WalkingTour: t, Museums: s.resolve(t.MuseumIDs)}
	}
	return out
}

// GetTour returns one predefined walking tour with museums resolved.
// Returns domain.ErrNotFound if no tour has that id.
func (s *TourService) GetTour(id string) (domain.ResolvedTour, error) {
	t, err := s.catalogue.Tour(id)
	if err != nil {
		return domain.ResolvedTour{}, fmt.Errorf("service.TourService.GetTour: %w", err)
	}
	return domain.ResolvedTour{WalkingTour: t, Museums: s.resolve(t.MuseumIDs)}, nil
}

// CreateCustom validates and persists a user-authored tour, returning it with
// museums resolved. Validation fails fast on the first museum id that does
// not resolve in the catalogue; the error names the offending id and nothing
// is persisted.
func (s *TourService) CreateCustom(ctx context.Context, name string, museumIDs []string) (domain.ResolvedCustomTour, error) {
	if name == "" {
		return domain.ResolvedCustomTour{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	for _, id := range museumIDs {
		if _, err := s.catalogue.Get(id); err != nil {
			return domain.ResolvedCustomTour{}, fmt.Errorf("%w: museum %s not found", domain.ErrValidation, id)
		}
	}

	tour := domain.CustomTour{
		ID:        uuid.NewString(),
		Name:      name,
		MuseumIDs: museumIDs,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tours.Insert(ctx, tour); err != nil {
		return domain.ResolvedCustomTour{}, fmt.Errorf("service.TourService.CreateCustom: %w", err)
	}

	return domain.ResolvedCustomTour{CustomTour: tour, Museums: s.resolve(tour.MuseumIDs)}, nil
}

// ListCustom returns all custom tours with museums resolved, capped at the
// ledger page size.
func (s *TourService) ListCustom(ctx context.Context) ([]domain.ResolvedCustomTour, error) {
	tours, err := s.tours.List(ctx, customTourPageSize)
	if err != nil {
		return nil, fmt.Errorf("service.TourService.ListCustom: %w", err)
	}

	out := make([]domain.ResolvedCustomTour, len(tours))
	for i, t := range tours {
		out[i] = domain.ResolvedCustomTour{CustomTour: t, Museums: s.resolve(t.MuseumIDs)}
	}
	return out, nil
}

// DeleteCustom removes a custom tour by id.
// Returns domain.ErrNotFound if no such tour exists.
func (s *TourService) DeleteCustom(ctx context.Context, id string) error {
	if err := s.tours.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("service.TourService.DeleteCustom: %w", err)
	}
	return nil
}

// resolve joins a museum-id list against the catalogue.
//
// The result follows catalogue order, NOT the id-list order: the catalogue is
// filtered by membership. Ids with no matching museum (e.g. deleted after the
// tour was created) are silently omitted — no error, no placeholder.
func (s *TourService) resolve(museumIDs []string) []domain.Museum {
	members := make(map[string]struct{}, len(museumIDs))
	for _, id := range museumIDs {
		members[id] = struct{}{}
	}
	return keep(s.catalogue.All(), func(m domain.Museum) bool {
		_, ok := members[m.ID]
		return ok
	})
}

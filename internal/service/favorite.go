package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nroberts/museums-of-london/backend/internal/catalogue"
	"github.com/nroberts/museums-of-london/backend/internal/domain"
	"github.com/nroberts/museums-of-london/backend/internal/repo"
)

// favoritePageSize caps how many favorite records a single listing reads.
const favoritePageSize = 100

// AddResult reports the outcome of adding a favorite.
// AlreadyExists distinguishes "newly added" from the idempotent case where a
// favorite for the museum was already present.
type AddResult struct {
	ID            string
	AlreadyExists bool
}

// FavoriteService manages the favorited-museum ledger, with the catalogue as
// the existence oracle for museum ids.
type FavoriteService struct {
	catalogue *catalogue.Store
	favorites repo.FavoriteRepo
}

// NewFavoriteService constructs a FavoriteService over the given catalogue
// and repo.
func NewFavoriteService(c *catalogue.Store, favorites repo.FavoriteRepo) *FavoriteService {
	return &FavoriteService{catalogue: c, favorites: favorites}
}

// Add marks a museum as favorited. The contract is an idempotent upsert: if
// a favorite for the museum already exists, its id is returned with
// AlreadyExists set and no second record is written. Returns
// domain.ErrNotFound if the museum id does not resolve in the catalogue.
//
// At-most-one-per-museum is enforced by check-then-insert, so two concurrent
// Adds for the same museum can both insert. Acceptable for this single-user
// ledger; a uniqueness index on museum_id would close the race without
// changing this method's contract.
func (s *FavoriteService) Add(ctx context.Context, museumID string) (AddResult, error) {
	if _, err := s.catalogue.Get(museumID); err != nil {
		return AddResult{}, fmt.Errorf("service.FavoriteService.Add: %w", err)
	}

	existing, err := s.favorites.FindByMuseumID(ctx, museumID)
	if err == nil {
		return AddResult{ID: existing.ID, AlreadyExists: true}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return AddResult{}, fmt.Errorf("service.FavoriteService.Add: %w", err)
	}

	fav := domain.Favorite{
		ID:        uuid.NewString(),
		MuseumID:  museumID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.favorites.Insert(ctx, fav); err != nil {
		return AddResult{}, fmt.Errorf("service.FavoriteService.Add: %w", err)
	}
	return AddResult{ID: fav.ID}, nil
}

// Remove deletes the favorite for the given museum id.
// Returns domain.ErrNotFound if the museum was not favorited.
func (s *FavoriteService) Remove(ctx context.Context, museumID string) error {
	if err := s.favorites.DeleteByMuseumID(ctx, museumID); err != nil {
		return fmt.Errorf("service.FavoriteService.Remove: %w", err)
	}
	return nil
}

// List returns the full museum records for all favorites, in catalogue
// order, capped at the ledger page size. Favorites whose museum id no longer
// resolves (deleted by an admin) are silently dropped.
func (s *FavoriteService) List(ctx context.Context) ([]domain.Museum, error) {
	favs, err := s.favorites.List(ctx, favoritePageSize)
	if err != nil {
		return nil, fmt.Errorf("service.FavoriteService.List: %w", err)
	}

	members := make(map[string]struct{}, len(favs))
	for _, f := range favs {
		members[f.MuseumID] = struct{}{}
	}
	return keep(s.catalogue.All(), func(m domain.Museum) bool {
		_, ok := members[m.ID]
		return ok
	}), nil
}

// IsFavorite reports whether the museum id is favorited. The id is not
// validated against the catalogue: checking a nonexistent museum returns
// false, not an error.
func (s *FavoriteService) IsFavorite(ctx context.Context, museumID string) (bool, error) {
	_, err := s.favorites.FindByMuseumID(ctx, museumID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("service.FavoriteService.IsFavorite: %w", err)
}

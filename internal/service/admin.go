package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nroberts/museums-of-london/backend/internal/catalogue"
	"github.com/nroberts/museums-of-london/backend/internal/domain"
	"github.com/nroberts/museums-of-london/backend/internal/repo"
)

// AdminService performs PIN-gated museum mutations, keeping the in-memory
// catalogue and the persistent mirror collection consistent. Each operation
// is internally ordered: authorize, validate, write Mongo, then update the
// catalogue.
type AdminService struct {
	catalogue *catalogue.Store
	museums   repo.MuseumRepo
	auth      Authorizer
}

// NewAdminService constructs an AdminService over the given catalogue, repo,
// and authorizer.
func NewAdminService(c *catalogue.Store, museums repo.MuseumRepo, auth Authorizer) *AdminService {
	return &AdminService{catalogue: c, museums: museums, auth: auth}
}

// Verify checks an admin PIN without performing any mutation.
// Returns domain.ErrUnauthorized on mismatch.
func (s *AdminService) Verify(pin string) error {
	return s.auth.Verify(pin)
}

// Create adds a new museum. The id is synthesized as max numeric id + 1 —
// the catalogue's seed data uses sequential numeric strings and external
// consumers depend on that scheme. Returns domain.ErrUnauthorized on a bad
// pin; on success the record is written to Mongo and appended to the
// catalogue.
func (s *AdminService) Create(ctx context.Context, m domain.Museum, pin string) (domain.Museum, error) {
	if err := s.auth.Verify(pin); err != nil {
		return domain.Museum{}, fmt.Errorf("service.AdminService.Create: %w", err)
	}

	m.ID = s.catalogue.NextID()
	m.CreatedAt = time.Now().UTC()
	m.EnsureLists()

	if err := s.museums.Insert(ctx, m); err != nil {
		return domain.Museum{}, fmt.Errorf("service.AdminService.Create: %w", err)
	}
	s.catalogue.Append(m)
	return m, nil
}

// Update replaces every field of an existing museum — a full replacement,
// not a patch. The original creation timestamp is preserved. Returns
// domain.ErrUnauthorized on a bad pin, domain.ErrNotFound if the id is
// absent from the catalogue. The Mongo write uses upsert semantics, creating
// the mirror record if it is somehow missing there.
func (s *AdminService) Update(ctx context.Context, id string, m domain.Museum, pin string) (domain.Museum, error) {
	if err := s.auth.Verify(pin); err != nil {
		return domain.Museum{}, fmt.Errorf("service.AdminService.Update: %w", err)
	}

	existing, err := s.catalogue.Get(id)
	if err != nil {
		return domain.Museum{}, fmt.Errorf("service.AdminService.Update: %w", err)
	}

	m.ID = id
	m.CreatedAt = existing.CreatedAt
	m.EnsureLists()

	if err := s.museums.Upsert(ctx, m); err != nil {
		return domain.Museum{}, fmt.Errorf("service.AdminService.Update: %w", err)
	}
	if err := s.catalogue.Replace(id, m); err != nil {
		return domain.Museum{}, fmt.Errorf("service.AdminService.Update: %w", err)
	}
	return m, nil
}

// Delete removes a museum from both the mirror collection and the catalogue.
// Returns domain.ErrUnauthorized on a bad pin, domain.ErrNotFound if the id
// is absent. Favorites and custom tours referencing the id are NOT cleaned
// up — they become dangling references, silently omitted at resolve time.
func (s *AdminService) Delete(ctx context.Context, id string, pin string) error {
	if err := s.auth.Verify(pin); err != nil {
		return fmt.Errorf("service.AdminService.Delete: %w", err)
	}

	if _, err := s.catalogue.Get(id); err != nil {
		return fmt.Errorf("service.AdminService.Delete: %w", err)
	}

	if err := s.museums.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.AdminService.Delete: %w", err)
	}
	if err := s.catalogue.Remove(id); err != nil {
		return fmt.Errorf("service.AdminService.Delete: %w", err)
	}
	return nil
}

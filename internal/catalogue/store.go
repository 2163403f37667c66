// Package catalogue holds the in-process museum and walking-tour data.
// The Store is the process-lifetime source of truth for reads; admin
// mutations keep it synchronized with the persistent mirror collection.
package catalogue

import (
	"strconv"
	"sync"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

// Store is an in-memory collection of museums plus the fixed walking-tour
// list. All access goes through its methods; the RWMutex serializes admin
// mutation against concurrent reads. Lookups are O(n) — the catalogue holds
// at most a few dozen records.
type Store struct {
	mu      sync.RWMutex
	museums []domain.Museum
	tours   []domain.WalkingTour
}

// NewStore builds a Store over the given museums and tours.
// The slices are owned by the Store after the call.
func NewStore(museums []domain.Museum, tours []domain.WalkingTour) *Store {
	return &Store{museums: museums, tours: tours}
}

// Get returns the museum with the given id, or domain.ErrNotFound.
func (s *Store) Get(id string) (domain.Museum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.museums {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Museum{}, domain.ErrNotFound
}

// All returns a copy of the museum list in insertion order.
func (s *Store) All() []domain.Museum {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Museum, len(s.museums))
	copy(out, s.museums)
	return out
}

// Len returns the number of museums in the catalogue.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.museums)
}

// Append adds a museum to the end of the catalogue. Used only by the admin
// service; id uniqueness is the caller's responsibility.
func (s *Store) Append(m domain.Museum) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.museums = append(s.museums, m)
}

// Replace overwrites the museum with the given id in place, keeping its
// position. Returns domain.ErrNotFound if no museum has that id.
func (s *Store) Replace(id string, m domain.Museum) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.museums {
		if s.museums[i].ID == id {
			s.museums[i] = m
			return nil
		}
	}
	return domain.ErrNotFound
}

// Remove deletes the museum with the given id.
// Returns domain.ErrNotFound if no museum has that id.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.museums {
		if s.museums[i].ID == id {
			s.museums = append(s.museums[:i], s.museums[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// NextID synthesizes a new museum id as (max existing numeric id) + 1,
// formatted as a string. Non-numeric ids are skipped, not an error; when no
// numeric ids exist the fallback is "1". The seed data uses sequential
// numeric strings ("1".."20") and created ids continue that scheme.
func (s *Store) NextID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for _, m := range s.museums {
		if n, err := strconv.Atoi(m.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// Tours returns the fixed walking-tour list in definition order.
func (s *Store) Tours() []domain.WalkingTour {
	out := make([]domain.WalkingTour, len(s.tours))
	copy(out, s.tours)
	return out
}

// Tour returns the walking tour with the given id, or domain.ErrNotFound.
func (s *Store) Tour(id string) (domain.WalkingTour, error) {
	for _, t := range s.tours {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.WalkingTour{}, domain.ErrNotFound
}

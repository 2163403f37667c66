// Package service contains the business logic for the Museums of London API.
// Services validate inputs, enforce the ledger contracts, and orchestrate
// catalogue and repo calls. No HTTP or Mongo specifics live here.
package service

import (
	"sort"
	"strings"

	"github.com/nroberts/museums-of-london/backend/internal/catalogue"
	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

// MuseumQuery carries the optional museum filters from the HTTP layer.
// Empty Category and Search strings mean "filter absent": an empty query
// parameter skips the filter entirely rather than matching nothing.
type MuseumQuery struct {
	Category string
	FreeOnly bool
	Search   string
}

// MuseumService produces filtered views of the catalogue without mutating it.
type MuseumService struct {
	catalogue *catalogue.Store
}

// NewMuseumService constructs a MuseumService over the given catalogue.
func NewMuseumService(c *catalogue.Store) *MuseumService {
	return &MuseumService{catalogue: c}
}

// Query returns the museums matching all provided filters, in catalogue
// order. Each filter is a pure narrowing pass over the previous result:
//
//  1. Category keeps museums whose category contains the filter as a
//     case-insensitive substring ("Art" matches "Art & Design").
//  2. FreeOnly keeps museums with free entry.
//  3. Search keeps museums where the lowercased term appears in the name,
//     description, or category. Transport and eatery text is never searched.
//
// With no filters the full catalogue is returned. Absence of matches yields
// an empty slice, never an error.
func (s *MuseumService) Query(q MuseumQuery) []domain.Museum {
	museums := s.catalogue.All()

	if q.Category != "" {
		needle := strings.ToLower(q.Category)
		museums = keep(museums, func(m domain.Museum) bool {
			return strings.Contains(strings.ToLower(m.Category), needle)
		})
	}

	if q.FreeOnly {
		museums = keep(museums, func(m domain.Museum) bool {
			return m.FreeEntry
		})
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		museums = keep(museums, func(m domain.Museum) bool {
			return strings.Contains(strings.ToLower(m.Name), needle) ||
				strings.Contains(strings.ToLower(m.Description), needle) ||
				strings.Contains(strings.ToLower(m.Category), needle)
		})
	}

	return museums
}

// Featured returns the museums flagged as featured, in catalogue order.
func (s *MuseumService) Featured() []domain.Museum {
	return keep(s.catalogue.All(), func(m domain.Museum) bool {
		return m.Featured
	})
}

// Categories returns the unique category labels sorted ascending.
// Deduplication is by exact string equality, not normalized casing.
func (s *MuseumService) Categories() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, m := range s.catalogue.All() {
		if _, ok := seen[m.Category]; ok {
			continue
		}
		seen[m.Category] = struct{}{}
		out = append(out, m.Category)
	}
	sort.Strings(out)
	return out
}

// Get returns a single museum by id.
// Returns domain.ErrNotFound if no museum has that id.
func (s *MuseumService) Get(id string) (domain.Museum, error) {
	return s.catalogue.Get(id)
}

// keep returns the museums for which pred is true, preserving order.
// Always returns a non-nil slice so results serialize as [] instead of null.
func keep(museums []domain.Museum, pred func(domain.Museum) bool) []domain.Museum {
	out := []domain.Museum{}
	for _, m := range museums {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

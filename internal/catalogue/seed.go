package catalogue

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

// The static dataset is content, not code: the London museum records and the
// curated walking tours ship as JSON embedded at compile time, so the data
// and the running binary are always in sync.
//
//go:embed museums.json tours.json
var seedFS embed.FS

// Seed builds a Store populated with the embedded London museum dataset and
// the predefined walking tours. Every seeded museum gets the same CreatedAt
// (process start); list fields are normalized so they never serialize as null.
func Seed() (*Store, error) {
	museums, err := loadMuseums()
	if err != nil {
		return nil, fmt.Errorf("catalogue.Seed: %w", err)
	}
	tours, err := loadTours()
	if err != nil {
		return nil, fmt.Errorf("catalogue.Seed: %w", err)
	}
	return NewStore(museums, tours), nil
}

func loadMuseums() ([]domain.Museum, error) {
	raw, err := seedFS.ReadFile("museums.json")
	if err != nil {
		return nil, fmt.Errorf("read museums.json: %w", err)
	}
	var museums []domain.Museum
	if err := json.Unmarshal(raw, &museums); err != nil {
		return nil, fmt.Errorf("parse museums.json: %w", err)
	}

	now := time.Now().UTC()
	for i := range museums {
		museums[i].CreatedAt = now
		museums[i].EnsureLists()
	}
	return museums, nil
}

func loadTours() ([]domain.WalkingTour, error) {
	raw, err := seedFS.ReadFile("tours.json")
	if err != nil {
		return nil, fmt.Errorf("read tours.json: %w", err)
	}
	var tours []domain.WalkingTour
	if err := json.Unmarshal(raw, &tours); err != nil {
		return nil, fmt.Errorf("parse tours.json: %w", err)
	}
	return tours, nil
}

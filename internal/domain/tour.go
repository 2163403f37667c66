package domain

import "time"

// WalkingTour is a curated, ordered grouping of museum ids plus display
// metadata. The predefined tours are static configuration loaded at startup
// and are never created, mutated, or deleted at runtime.
type WalkingTour struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Distance    string   `json:"distance"`
	Color       string   `json:"color"`
	MuseumIDs   []string `json:"museum_ids"`
}

// CustomTour is a user-authored analog of WalkingTour.
// Every entry in MuseumIDs must reference an existing museum at creation
// time; the record is never updated in place.
type CustomTour struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	MuseumIDs []string  `json:"museum_ids" bson:"museum_ids"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ResolvedTour is a WalkingTour with its museum ids resolved to full records.
// Museums follows catalogue order, not MuseumIDs order; ids with no matching
// museum are silently omitted.
type ResolvedTour struct {
	WalkingTour
	Museums []Museum `json:"museums"`
}

// ResolvedCustomTour is a CustomTour with its museum ids resolved to full
// records, with the same ordering and omission semantics as ResolvedTour.
type ResolvedCustomTour struct {
	CustomTour
	Museums []Museum `json:"museums"`
}

// Package domain contains the core data types for the Museums of London API.
// This package has zero external dependencies beyond uuid/time and is imported
// by every other internal package (catalogue, repo, service, handler).
package domain

import "time"

// TransportLink is one nearby transit option for a museum.
// Line is set for tube/train entries, Routes for bus stops; either may be nil.
// Distance is a free-text walking descriptor such as "5 min walk", never a number.
type TransportLink struct {
	Type     string   `json:"type" bson:"type"` // tube, bus, train, etc.
	Name     string   `json:"name" bson:"name"`
	Line     *string  `json:"line" bson:"line,omitempty"`
	Routes   []string `json:"routes" bson:"routes,omitempty"`
	Distance string   `json:"distance" bson:"distance"`
}

// NearbyEatery is one dining option near a museum.
// PriceRange is one of "£", "££", "£££". The source data legitimately contains
// duplicate eateries across museums; they are never deduplicated.
type NearbyEatery struct {
	Name       string   `json:"name" bson:"name"`
	Type       string   `json:"type" bson:"type"` // Cafe, Restaurant, Pub, etc.
	Cuisine    *string  `json:"cuisine" bson:"cuisine,omitempty"`
	Distance   string   `json:"distance" bson:"distance"`
	PriceRange string   `json:"price_range" bson:"price_range"`
	Address    *string  `json:"address" bson:"address,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
}

// Museum is a single catalogue entry.
// ID is a stable string referenced externally by favorites and tours.
// Transport and NearbyEateries may be empty but are never nil — consumers
// rely on the fields serializing as [] rather than null.
type Museum struct {
	ID               string          `json:"id" bson:"id"`
	Name             string          `json:"name" bson:"name"`
	Description      string          `json:"description" bson:"description"`
	ShortDescription string          `json:"short_description" bson:"short_description"`
	Address          string          `json:"address" bson:"address"`
	Latitude         float64         `json:"latitude" bson:"latitude"`
	Longitude        float64         `json:"longitude" bson:"longitude"`
	ImageURL         string          `json:"image_url" bson:"image_url"`
	Category         string          `json:"category" bson:"category"`
	FreeEntry        bool            `json:"free_entry" bson:"free_entry"`
	OpeningHours     string          `json:"opening_hours" bson:"opening_hours"`
	Website          *string         `json:"website" bson:"website,omitempty"`
	Phone            *string         `json:"phone" bson:"phone,omitempty"`
	Transport        []TransportLink `json:"transport" bson:"transport"`
	NearbyEateries   []NearbyEatery  `json:"nearby_eateries" bson:"nearby_eateries"`
	Featured         bool            `json:"featured" bson:"featured"`
	Rating           float64         `json:"rating" bson:"rating"`
	CreatedAt        time.Time       `json:"created_at" bson:"created_at"`
}

// EnsureLists replaces nil list fields with empty slices so the museum
// serializes with [] instead of null.
func (m *Museum) EnsureLists() {
	if m.Transport == nil {
		m.Transport = []TransportLink{}
	}
	if m.NearbyEateries == nil {
		m.NearbyEateries = []NearbyEatery{}
	}
}

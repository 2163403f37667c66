package domain

import "time"

// Favorite is a join record marking one museum as favorited.
// MuseumID must reference an existing museum at creation time — validated by
// the service against the catalogue, not enforced by the database.
// At most one Favorite exists per museum id under sequential operation.
type Favorite struct {
	ID        string    `json:"id" bson:"id"`
	MuseumID  string    `json:"museum_id" bson:"museum_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

// MuseumRepo defines the persistence operations for the museum mirror
// collection. The in-memory catalogue is authoritative for reads; this
// collection is the durable copy the admin service keeps in sync on every
// mutation.
type MuseumRepo interface {
	// Insert stores a newly created museum record.
	Insert(ctx context.Context, m domain.Museum) error

	// Upsert replaces the stored museum with the same id, creating the
	// record if it is somehow absent.
	Upsert(ctx context.Context, m domain.Museum) error

	// Delete removes the museum with the given id. Absence is not an error:
	// the catalogue, not this collection, is the existence oracle.
	Delete(ctx context.Context, id string) error
}

// mongoMuseumRepo is the MongoDB implementation of MuseumRepo.
type mongoMuseumRepo struct {
	col *mongo.Collection
}

// NewMuseumRepo constructs a MuseumRepo over the "museums" collection of the
// provided database.
func NewMuseumRepo(db *mongo.Database) MuseumRepo {
	return &mongoMuseumRepo{col: db.Collection("museums")}
}

func (r *mongoMuseumRepo) Insert(ctx context.Context, m domain.Museum) error {
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("repo.MuseumRepo.Insert: %w", err)
	}
	return nil
}

func (r *mongoMuseumRepo) Upsert(ctx context.Context, m domain.Museum) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"id": m.ID}, m, opts); err != nil {
		return fmt.Errorf("repo.MuseumRepo.Upsert: %w", err)
	}
	return nil
}

func (r *mongoMuseumRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("repo.MuseumRepo.Delete: %w", err)
	}
	return nil
}

package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

// CustomTourRepo defines the persistence operations for user-authored tours.
type CustomTourRepo interface {
	// Insert stores a new custom tour record.
	Insert(ctx context.Context, tour domain.CustomTour) error

	// List returns up to limit custom tours in insertion order.
	List(ctx context.Context, limit int64) ([]domain.CustomTour, error)

	// DeleteByID removes the custom tour with the given id.
	// Returns domain.ErrNotFound if no such record exists.
	DeleteByID(ctx context.Context, id string) error
}

// mongoCustomTourRepo is the MongoDB implementation of CustomTourRepo.
type mongoCustomTourRepo struct {
	col *mongo.Collection
}

// NewCustomTourRepo constructs a CustomTourRepo over the "custom_tours"
// collection of the provided database.
func NewCustomTourRepo(db *mongo.Database) CustomTourRepo {
	return &mongoCustomTourRepo{col: db.Collection("custom_tours")}
}

func (r *mongoCustomTourRepo) Insert(ctx context.Context, tour domain.CustomTour) error {
	if _, err := r.col.InsertOne(ctx, tour); err != nil {
		return fmt.Errorf("repo.CustomTourRepo.Insert: %w", err)
	}
	return nil
}

func (r *mongoCustomTourRepo) List(ctx context.Context, limit int64) ([]domain.CustomTour, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("repo.CustomTourRepo.List: %w", err)
	}
	defer cur.Close(ctx)

	var tours []domain.CustomTour
	if err := cur.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("repo.CustomTourRepo.List: decode: %w", err)
	}
	return tours, nil
}

func (r *mongoCustomTourRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CustomTourRepo.DeleteByID: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("repo.CustomTourRepo.DeleteByID: %w", domain.ErrNotFound)
	}
	return nil
}

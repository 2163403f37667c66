// Package repo contains all database access logic for the Museums of London
// API. Each collection has its own file with an interface and a MongoDB
// implementation. No business logic lives here — only queries and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

// FavoriteRepo defines the persistence operations for Favorites.
// The service layer depends on this interface, not the Mongo implementation,
// which allows the service to be unit-tested with a mock.
type FavoriteRepo interface {
	// FindByMuseumID returns the favorite referencing the given museum id.
	// Returns domain.ErrNotFound if no such favorite exists.
	FindByMuseumID(ctx context.Context, museumID string) (domain.Favorite, error)

	// Insert stores a new favorite record.
	Insert(ctx context.Context, fav domain.Favorite) error

	// DeleteByMuseumID removes the favorite referencing the given museum id.
	// Returns domain.ErrNotFound if none existed.
	DeleteByMuseumID(ctx context.Context, museumID string) error

	// List returns up to limit favorite records in insertion order.
	List(ctx context.Context, limit int64) ([]domain.Favorite, error)
}

// mongoFavoriteRepo is the MongoDB implementation of FavoriteRepo.
type mongoFavoriteRepo struct {
	col *mongo.Collection
}

// NewFavoriteRepo constructs a FavoriteRepo over the "favorites" collection
// of the provided database.
func NewFavoriteRepo(db *mongo.Database) FavoriteRepo {
	return &mongoFavoriteRepo{col: db.Collection("favorites")}
}

func (r *mongoFavoriteRepo) FindByMuseumID(ctx context.Context, museumID string) (domain.Favorite, error) {
	var fav domain.Favorite
	err := r.col.FindOne(ctx, bson.M{"museum_id": museumID}).Decode(&fav)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Favorite{}, domain.ErrNotFound
		}
		return domain.Favorite{}, fmt.Errorf("repo.FavoriteRepo.FindByMuseumID: %w", err)
	}
	return fav, nil
}

func (r *mongoFavoriteRepo) Insert(ctx context.Context, fav domain.Favorite) error {
	if _, err := r.col.InsertOne(ctx, fav); err != nil {
		return fmt.Errorf("repo.FavoriteRepo.Insert: %w", err)
	}
	return nil
}

func (r *mongoFavoriteRepo) DeleteByMuseumID(ctx context.Context, museumID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"museum_id": museumID})
	if err != nil {
		return fmt.Errorf("repo.FavoriteRepo.DeleteByMuseumID: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("repo.FavoriteRepo.DeleteByMuseumID: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *mongoFavoriteRepo) List(ctx context.Context, limit int64) ([]domain.Favorite, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.List: %w", err)
	}
	defer cur.Close(ctx)

	var favs []domain.Favorite
	if err := cur.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.List: decode: %w", err)
	}
	return favs, nil
}

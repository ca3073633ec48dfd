package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
)

const favoritesCollection = "favorites"

// FavoriteRepository maintains the per-user favorite route id sets.
type FavoriteRepository struct {
	db *mongo.Database
}

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Ensure lazily creates the user's favorites document. The $setOnInsert
// upsert is atomic, so concurrent calls for the same user cannot create
// duplicates.
func (r *FavoriteRepository) Ensure(ctx context.Context, userID string) error {
	_, err := r.db.Collection(favoritesCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"route_ids":  []string{},
			"created_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Log.Errorw("failed to ensure favorites document", "user_id", userID, "error", err)
	}
	return err
}

// Add inserts a route id into the user's favorite set if absent. Adding an
// existing id is a no-op; $addToSet keeps the set duplicate-free.
func (r *FavoriteRepository) Add(ctx context.Context, userID, routeID string) error {
	if err := r.Ensure(ctx, userID); err != nil {
		return err
	}

	_, err := r.db.Collection(favoritesCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$addToSet": bson.M{"route_ids": routeID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		logger.Log.Errorw("failed to add favorite", "user_id", userID, "route_id", routeID, "error", err)
	}
	return err
}

// Remove pulls a route id from the user's favorite set. Removing a non-member
// id is a no-op, not an error.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, routeID string) error {
	if err := r.Ensure(ctx, userID); err != nil {
		return err
	}

	_, err := r.db.Collection(favoritesCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$pull": bson.M{"route_ids": routeID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		logger.Log.Errorw("failed to remove favorite", "user_id", userID, "route_id", routeID, "error", err)
	}
	return err
}

// List returns the user's favorite route ids in insertion order.
func (r *FavoriteRepository) List(ctx context.Context, userID string) ([]string, error) {
	if err := r.Ensure(ctx, userID); err != nil {
		return nil, err
	}

	var set models.FavoriteSetDB
	err := r.db.Collection(favoritesCollection).
		FindOne(ctx, bson.M{"_id": userID}, options.FindOne().SetProjection(bson.M{"route_ids": 1})).
		Decode(&set)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "user_id", userID, "error", err)
		return nil, err
	}

	return set.RouteIDs, nil
}

// IsFavorite reports whether the route id is a member of the user's set.
func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, routeID string) (bool, error) {
	if err := r.Ensure(ctx, userID); err != nil {
		return false, err
	}

	err := r.db.Collection(favoritesCollection).
		FindOne(ctx, bson.M{"_id": userID, "route_ids": routeID},
			options.FindOne().SetProjection(bson.M{"_id": 1})).
		Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to check favorite membership", "user_id", userID, "route_id", routeID, "error", err)
		return false, err
	}

	return true, nil
}

// Count returns the number of favorites held by the user. A missing document
// counts as zero; no document is created.
func (r *FavoriteRepository) Count(ctx context.Context, userID string) (int64, error) {
	var set models.FavoriteSetDB
	err := r.db.Collection(favoritesCollection).
		FindOne(ctx, bson.M{"_id": userID}, options.FindOne().SetProjection(bson.M{"route_ids": 1})).
		Decode(&set)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to count favorites", "user_id", userID, "error", err)
		return 0, err
	}

	return int64(len(set.RouteIDs)), nil
}

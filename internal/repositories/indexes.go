package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rexapp/rex-backend/internal/logger"
)

// EnsureIndexes creates the unique indexes the uniqueness guarantees depend on:
// users.email, users.username and routes(owner_id, name).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("u_email"),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("u_username"),
		},
	})
	if err != nil {
		logger.Log.Errorw("failed to create user indexes", "error", err)
		return err
	}

	_, err = db.Collection(routesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("u_owner_name"),
	})
	if err != nil {
		logger.Log.Errorw("failed to create route indexes", "error", err)
		return err
	}

	return nil
}

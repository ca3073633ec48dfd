package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rexapp/rex-backend/internal/logger"
)

const completionsCollection = "user_routes_completed"

// CompletionReadRepository counts completed routes per user. The collection is
// written by a separate tracking flow; counting a collection that was never
// created yields zero.
type CompletionReadRepository struct {
	db *mongo.Database
}

func NewCompletionReadRepository(db *mongo.Database) *CompletionReadRepository {
	return &CompletionReadRepository{db: db}
}

// CountByUser returns how many routes the user has completed.
func (r *CompletionReadRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	n, err := r.db.Collection(completionsCollection).CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		logger.Log.Errorw("failed to count completed routes", "user_id", userID, "error", err)
		return 0, err
	}
	return n, nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
)

const usersCollection = "users"

type UserReadRepository struct {
	db *mongo.Database
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to find user by email", "email", email, "error", err)
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given hex id. A malformed id or a missing
// user both yield nil without error.
func (r *UserReadRepository) GetByID(ctx context.Context, userID string) (*models.UserDB, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	var user models.UserDB
	err = r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to find user by id", "user_id", userID, "error", err)
		return nil, err
	}

	return &user, nil
}

// IsUsernameTaken reports whether another user already holds the username.
func (r *UserReadRepository) IsUsernameTaken(ctx context.Context, username, excludeUserID string) (bool, error) {
	filter := bson.M{"username": username}
	if excludeUserID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeUserID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}

	err := r.db.Collection(usersCollection).FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", username, "error", err)
		return false, err
	}

	return true, nil
}

type UserWriteRepository struct {
	db *mongo.Database
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user document and fills in its generated id.
// A unique-index violation surfaces as ErrDuplicateKey.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.db.Collection(usersCollection).InsertOne(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to insert user", "email", user.Email, "error", err)
		return translateWriteError(err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// Update applies a partial profile patch with $set/$unset semantics and
// returns the updated document. A username unique-index violation surfaces
// as ErrDuplicateKey.
func (r *UserWriteRepository) Update(ctx context.Context, userID string, patch models.UserPatch) (*models.UserDB, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	toSet := bson.M{"updated_at": time.Now().UTC()}
	toUnset := bson.M{}

	if patch.Username != nil {
		toSet["username"] = *patch.Username
	}
	if patch.PreferredUnits != nil {
		toSet["preferred_units"] = *patch.PreferredUnits
	}
	if patch.Phone != nil {
		toSet["phone"] = *patch.Phone
	} else if patch.ClearPhone {
		toUnset["phone"] = ""
	}
	if patch.AvatarURL != nil {
		toSet["avatar_url"] = *patch.AvatarURL
	} else if patch.ClearAvatar {
		toUnset["avatar_url"] = ""
	}

	update := bson.M{"$set": toSet}
	if len(toUnset) > 0 {
		update["$unset"] = toUnset
	}

	if _, err := r.db.Collection(usersCollection).UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "error", err)
		return nil, translateWriteError(err)
	}

	var user models.UserDB
	if err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

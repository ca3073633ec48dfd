package services

import (
	"context"
	"errors"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/repositories"
)

// Error variables
var (
	ErrUsernameTaken = errors.New("username already taken")
)

// RouteCounter counts routes created by a user.
type RouteCounter interface {
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

// CompletionCounter counts routes completed by a user.
type CompletionCounter interface {
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// FavoriteCounter counts a user's favorites without creating the set.
type FavoriteCounter interface {
	Count(ctx context.Context, userID string) (int64, error)
}

// UsernameChecker checks username availability.
type UsernameChecker interface {
	IsUsernameTaken(ctx context.Context, username, excludeUserID string) (bool, error)
}

// ProfileWriter applies partial profile updates.
type ProfileWriter interface {
	Update(ctx context.Context, userID string, patch models.UserPatch) (*models.UserDB, error)
}

// ProfileService aggregates user data with usage counters and applies
// profile patches.
type ProfileService struct {
	routes      RouteCounter
	completions CompletionCounter
	favorites   FavoriteCounter
	checker     UsernameChecker
	writer      ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(
	routes RouteCounter,
	completions CompletionCounter,
	favorites FavoriteCounter,
	checker UsernameChecker,
	writer ProfileWriter,
) *ProfileService {
	return &ProfileService{
		routes:      routes,
		completions: completions,
		favorites:   favorites,
		checker:     checker,
		writer:      writer,
	}
}

// BuildProfile combines the user record with created/completed/favorited
// counts. The three counts are independent reads; the result is a best-effort
// snapshot.
func (svc *ProfileService) BuildProfile(ctx context.Context, user *models.UserDB) (*models.Profile, error) {
	userID := user.ID.Hex()

	created, err := svc.routes.CountByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count created routes", "user_id", userID, "err", err)
		return nil, err
	}
	completed, err := svc.completions.CountByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count completed routes", "user_id", userID, "err", err)
		return nil, err
	}
	favorites, err := svc.favorites.Count(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count favorites", "user_id", userID, "err", err)
		return nil, err
	}

	username := user.Username
	if username == "" && user.Name != nil {
		username = *user.Name
	}
	units := user.PreferredUnits
	if units == "" {
		units = "km"
	}

	return &models.Profile{
		ID:             userID,
		Username:       username,
		Email:          user.Email,
		Phone:          user.Phone,
		PreferredUnits: units,
		AvatarURL:      user.AvatarURL,
		Stats: models.ProfileStats{
			RoutesCreated:   created,
			RoutesCompleted: completed,
			RoutesFavorites: favorites,
		},
	}, nil
}

// UpdateProfile applies a partial update. Username uniqueness is pre-checked
// and authoritatively enforced by the unique index, both surfacing
// ErrUsernameTaken.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID string, patch models.UserPatch) (*models.UserDB, error) {
	if patch.Username != nil {
		taken, err := svc.checker.IsUsernameTaken(ctx, *patch.Username, userID)
		if err != nil {
			logger.Log.Errorw("failed to check username", "username", *patch.Username, "err", err)
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
	}

	user, err := svc.writer.Update(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}
	return user, nil
}

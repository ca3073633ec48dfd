package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/repositories"
	"github.com/rexapp/rex-backend/internal/services"
)

func newProfileService(ctrl *gomock.Controller) (
	*services.ProfileService,
	*services.MockRouteCounter,
	*services.MockCompletionCounter,
	*services.MockFavoriteCounter,
	*services.MockUsernameChecker,
	*services.MockProfileWriter,
) {
	routes := services.NewMockRouteCounter(ctrl)
	completions := services.NewMockCompletionCounter(ctrl)
	favorites := services.NewMockFavoriteCounter(ctrl)
	checker := services.NewMockUsernameChecker(ctrl)
	writer := services.NewMockProfileWriter(ctrl)
	svc := services.NewProfileService(routes, completions, favorites, checker, writer)
	return svc, routes, completions, favorites, checker, writer
}

func TestProfileService_BuildProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, routes, completions, favorites, _, _ := newProfileService(ctrl)

	user := &models.UserDB{
		ID:             primitive.NewObjectID(),
		Email:          "alice@example.com",
		Username:       "alice",
		PreferredUnits: "mi",
	}
	userID := user.ID.Hex()

	routes.EXPECT().CountByOwner(gomock.Any(), userID).Return(int64(3), nil)
	completions.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(2), nil)
	favorites.EXPECT().Count(gomock.Any(), userID).Return(int64(7), nil)

	profile, err := svc.BuildProfile(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "mi", profile.PreferredUnits)
	assert.Equal(t, int64(3), profile.Stats.RoutesCreated)
	assert.Equal(t, int64(2), profile.Stats.RoutesCompleted)
	assert.Equal(t, int64(7), profile.Stats.RoutesFavorites)
}

func TestProfileService_BuildProfile_Fallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, routes, completions, favorites, _, _ := newProfileService(ctrl)

	name := "Alice Smith"
	user := &models.UserDB{
		ID:    primitive.NewObjectID(),
		Email: "alice@example.com",
		Name:  &name,
	}
	userID := user.ID.Hex()

	routes.EXPECT().CountByOwner(gomock.Any(), userID).Return(int64(0), nil)
	completions.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(0), nil)
	favorites.EXPECT().Count(gomock.Any(), userID).Return(int64(0), nil)

	profile, err := svc.BuildProfile(context.Background(), user)
	assert.NoError(t, err)
	// Missing username falls back to the display name, missing units to km.
	assert.Equal(t, "Alice Smith", profile.Username)
	assert.Equal(t, "km", profile.PreferredUnits)
}

func TestProfileService_BuildProfile_CounterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: primitive.NewObjectID(), Email: "alice@example.com"}
	userID := user.ID.Hex()

	t.Run("route counter error", func(t *testing.T) {
		svc, routes, _, _, _, _ := newProfileService(ctrl)
		routes.EXPECT().CountByOwner(gomock.Any(), userID).Return(int64(0), errors.New("db error"))

		profile, err := svc.BuildProfile(context.Background(), user)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, profile)
	})

	t.Run("completion counter error", func(t *testing.T) {
		svc, routes, completions, _, _, _ := newProfileService(ctrl)
		routes.EXPECT().CountByOwner(gomock.Any(), userID).Return(int64(1), nil)
		completions.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(0), errors.New("db error"))

		profile, err := svc.BuildProfile(context.Background(), user)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, profile)
	})

	t.Run("favorite counter error", func(t *testing.T) {
		svc, routes, completions, favorites, _, _ := newProfileService(ctrl)
		routes.EXPECT().CountByOwner(gomock.Any(), userID).Return(int64(1), nil)
		completions.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(1), nil)
		favorites.EXPECT().Count(gomock.Any(), userID).Return(int64(0), errors.New("db error"))

		profile, err := svc.BuildProfile(context.Background(), user)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, profile)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := primitive.NewObjectID().Hex()
	newUsername := "alice2"

	tests := []struct {
		name       string
		patch      models.UserPatch
		taken      bool
		checkerErr error
		writerErr  error
		wantErr    error
	}{
		{
			name:  "username change succeeds",
			patch: models.UserPatch{Username: &newUsername},
		},
		{
			name:    "username taken",
			patch:   models.UserPatch{Username: &newUsername},
			taken:   true,
			wantErr: services.ErrUsernameTaken,
		},
		{
			name:       "checker error",
			patch:      models.UserPatch{Username: &newUsername},
			checkerErr: errors.New("db error"),
			wantErr:    errors.New("db error"),
		},
		{
			name:      "duplicate key on update",
			patch:     models.UserPatch{Username: &newUsername},
			writerErr: repositories.ErrDuplicateKey,
			wantErr:   services.ErrUsernameTaken,
		},
		{
			name:  "patch without username skips the check",
			patch: models.UserPatch{ClearPhone: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _, checker, writer := newProfileService(ctrl)

			if tt.patch.Username != nil {
				checker.EXPECT().
					IsUsernameTaken(gomock.Any(), *tt.patch.Username, userID).
					Return(tt.taken, tt.checkerErr)
			}
			if !tt.taken && tt.checkerErr == nil {
				writer.EXPECT().
					Update(gomock.Any(), userID, tt.patch).
					Return(&models.UserDB{Username: newUsername}, tt.writerErr)
			}

			user, err := svc.UpdateProfile(context.Background(), userID, tt.patch)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/services"
)

func TestFavoriteService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockFavoriteStore(ctrl)
	mockRoutes := services.NewMockRouteGetter(ctrl)

	svc := services.NewFavoriteService(mockStore, mockRoutes)

	userID := primitive.NewObjectID().Hex()
	ownerID := primitive.NewObjectID().Hex()
	routeID := primitive.NewObjectID()

	tests := []struct {
		name      string
		routeID   string
		route     *models.RouteDB
		getterErr error
		storeErr  error
		wantErr   error
		skipGet   bool
		skipStore bool
	}{
		{
			name:    "public route",
			routeID: routeID.Hex(),
			route:   &models.RouteDB{ID: routeID, OwnerID: ownerID, Visibility: true},
		},
		{
			name:    "own private route",
			routeID: routeID.Hex(),
			route:   &models.RouteDB{ID: routeID, OwnerID: userID, Visibility: false},
		},
		{
			name:      "foreign private route",
			routeID:   routeID.Hex(),
			route:     &models.RouteDB{ID: routeID, OwnerID: ownerID, Visibility: false},
			wantErr:   services.ErrRouteNotFoundOrForbidden,
			skipStore: true,
		},
		{
			name:      "missing route",
			routeID:   routeID.Hex(),
			wantErr:   services.ErrRouteNotFoundOrForbidden,
			skipStore: true,
		},
		{
			name:      "malformed route id",
			routeID:   "not-an-object-id",
			wantErr:   services.ErrValidation,
			skipGet:   true,
			skipStore: true,
		},
		{
			name:      "getter error",
			routeID:   routeID.Hex(),
			getterErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			skipStore: true,
		},
		{
			name:     "store error",
			routeID:  routeID.Hex(),
			route:    &models.RouteDB{ID: routeID, OwnerID: ownerID, Visibility: true},
			storeErr: errors.New("db error"),
			wantErr:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.skipGet {
				mockRoutes.EXPECT().
					GetByID(gomock.Any(), tt.routeID).
					Return(tt.route, tt.getterErr)
			}
			if !tt.skipStore {
				mockStore.EXPECT().
					Add(gomock.Any(), userID, tt.routeID).
					Return(tt.storeErr)
			}

			err := svc.Add(context.Background(), userID, tt.routeID)
			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, services.ErrValidation) {
					assert.ErrorIs(t, err, services.ErrValidation)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFavoriteService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockFavoriteStore(ctrl)
	mockRoutes := services.NewMockRouteGetter(ctrl)

	svc := services.NewFavoriteService(mockStore, mockRoutes)

	userID := primitive.NewObjectID().Hex()
	routeID := primitive.NewObjectID().Hex()

	// Removal does not check route existence: un-favoriting a deleted route
	// must still work.
	mockStore.EXPECT().Remove(gomock.Any(), userID, routeID).Return(nil)
	assert.NoError(t, svc.Remove(context.Background(), userID, routeID))

	err := svc.Remove(context.Background(), userID, "not-an-object-id")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockFavoriteStore(ctrl)
	mockRoutes := services.NewMockRouteGetter(ctrl)

	svc := services.NewFavoriteService(mockStore, mockRoutes)

	userID := primitive.NewObjectID().Hex()
	routeID := primitive.NewObjectID().Hex()

	mockStore.EXPECT().IsFavorite(gomock.Any(), userID, routeID).Return(true, nil)

	ok, err := svc.IsFavorite(context.Background(), userID, routeID)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestFavoriteService_ResolvePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockFavoriteStore(ctrl)
	mockRoutes := services.NewMockRouteGetter(ctrl)

	svc := services.NewFavoriteService(mockStore, mockRoutes)

	userID := primitive.NewObjectID().Hex()

	ids := make([]primitive.ObjectID, 5)
	hexes := make([]string, 5)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
		hexes[i] = ids[i].Hex()
	}

	t.Run("preserves favorite order and drops missing routes", func(t *testing.T) {
		mockStore.EXPECT().List(gomock.Any(), userID).Return(hexes, nil)
		// Fetch returns routes out of order and without hexes[2], which was
		// deleted after being favorited.
		mockRoutes.EXPECT().
			GetByIDs(gomock.Any(), hexes).
			Return([]models.RouteDB{
				{ID: ids[4]},
				{ID: ids[0]},
				{ID: ids[3]},
				{ID: ids[1]},
			}, nil)

		routes, err := svc.ResolvePage(context.Background(), userID, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, routes, 4)
		assert.Equal(t, ids[0], routes[0].ID)
		assert.Equal(t, ids[1], routes[1].ID)
		assert.Equal(t, ids[3], routes[2].ID)
		assert.Equal(t, ids[4], routes[3].ID)
	})

	t.Run("slices the id list before fetching", func(t *testing.T) {
		mockStore.EXPECT().List(gomock.Any(), userID).Return(hexes, nil)
		mockRoutes.EXPECT().
			GetByIDs(gomock.Any(), hexes[1:3]).
			Return([]models.RouteDB{{ID: ids[1]}, {ID: ids[2]}}, nil)

		routes, err := svc.ResolvePage(context.Background(), userID, 1, 2)
		assert.NoError(t, err)
		assert.Len(t, routes, 2)
		assert.Equal(t, ids[1], routes[0].ID)
		assert.Equal(t, ids[2], routes[1].ID)
	})

	t.Run("skip beyond end returns empty page", func(t *testing.T) {
		mockStore.EXPECT().List(gomock.Any(), userID).Return(hexes, nil)

		routes, err := svc.ResolvePage(context.Background(), userID, 10, 5)
		assert.NoError(t, err)
		assert.NotNil(t, routes)
		assert.Empty(t, routes)
	})

	t.Run("empty favorite set", func(t *testing.T) {
		mockStore.EXPECT().List(gomock.Any(), userID).Return(nil, nil)

		routes, err := svc.ResolvePage(context.Background(), userID, 0, 10)
		assert.NoError(t, err)
		assert.Empty(t, routes)
	})

	t.Run("list error", func(t *testing.T) {
		mockStore.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("db error"))

		routes, err := svc.ResolvePage(context.Background(), userID, 0, 10)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, routes)
	})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/services"
)

func TestMeHandler(t *testing.T) {
	user := testUser()

	t.Run("authenticated", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodGet, "/auth/me", nil), user)
		rec := httptest.NewRecorder()

		NewMeHandler()(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp MeResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, user.ID.Hex(), resp.ID)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("no session user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rec := httptest.NewRecorder()

		NewMeHandler()(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProfileBuilder(ctrl)
		mockSvc.EXPECT().
			BuildProfile(gomock.Any(), user).
			Return(&models.Profile{
				ID:             user.ID.Hex(),
				Username:       user.Username,
				Email:          user.Email,
				PreferredUnits: "km",
				Stats: models.ProfileStats{
					RoutesCreated:   3,
					RoutesCompleted: 1,
					RoutesFavorites: 2,
				},
			}, nil)

		req := withUser(httptest.NewRequest(http.MethodGet, "/users/me/profile", nil), user)
		rec := httptest.NewRecorder()

		NewProfileHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.Profile
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.Stats.RoutesCreated)
		assert.Equal(t, "km", resp.PreferredUnits)
	})

	t.Run("builder error", func(t *testing.T) {
		mockSvc := NewMockProfileBuilder(ctrl)
		mockSvc.EXPECT().
			BuildProfile(gomock.Any(), user).
			Return(nil, errors.New("database failure"))

		req := withUser(httptest.NewRequest(http.MethodGet, "/users/me/profile", nil), user)
		rec := httptest.NewRecorder()

		NewProfileHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestProfileUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	t.Run("updates username", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		mockSvc.EXPECT().
			UpdateProfile(gomock.Any(), user.ID.Hex(), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, patch models.UserPatch) (*models.UserDB, error) {
				assert.NotNil(t, patch.Username)
				assert.Equal(t, "alice2", *patch.Username)
				assert.False(t, patch.ClearPhone)
				return &models.UserDB{ID: user.ID, Email: user.Email, Username: "alice2"}, nil
			})

		req := withUser(httptest.NewRequest(http.MethodPatch, "/users/me/profile",
			bytes.NewBufferString(`{"username":"alice2"}`)), user)
		rec := httptest.NewRecorder()

		NewProfileUpdateHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ProfileUpdateResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "alice2", resp.Username)
	})

	t.Run("null phone clears the field", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		mockSvc.EXPECT().
			UpdateProfile(gomock.Any(), user.ID.Hex(), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, patch models.UserPatch) (*models.UserDB, error) {
				assert.True(t, patch.ClearPhone)
				assert.Nil(t, patch.Phone)
				return &models.UserDB{ID: user.ID, Email: user.Email, Username: user.Username}, nil
			})

		req := withUser(httptest.NewRequest(http.MethodPatch, "/users/me/profile",
			bytes.NewBufferString(`{"phone":null}`)), user)
		rec := httptest.NewRecorder()

		NewProfileUpdateHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("username taken", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		mockSvc.EXPECT().
			UpdateProfile(gomock.Any(), user.ID.Hex(), gomock.Any()).
			Return(nil, services.ErrUsernameTaken)

		req := withUser(httptest.NewRequest(http.MethodPatch, "/users/me/profile",
			bytes.NewBufferString(`{"username":"taken"}`)), user)
		rec := httptest.NewRecorder()

		NewProfileUpdateHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)

		req := withUser(httptest.NewRequest(http.MethodPatch, "/users/me/profile",
			bytes.NewBufferString(`{"username":`)), user)
		rec := httptest.NewRecorder()

		NewProfileUpdateHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("user disappeared", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		mockSvc.EXPECT().
			UpdateProfile(gomock.Any(), user.ID.Hex(), gomock.Any()).
			Return(nil, nil)

		req := withUser(httptest.NewRequest(http.MethodPatch, "/users/me/profile",
			bytes.NewBufferString(`{"username":"alice2"}`)), user)
		rec := httptest.NewRecorder()

		NewProfileUpdateHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	NewHealthHandler()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

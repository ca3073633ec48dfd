package handlers

import (
	"context"
	"net/http"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
	"github.com/rexapp/rex-backend/internal/models"
)

// ProfileBuilder defines the interface for building the aggregated profile.
type ProfileBuilder interface {
	BuildProfile(ctx context.Context, user *models.UserDB) (*models.Profile, error)
}

// NewProfileHandler returns an HTTP handler for the session user's profile
// with created/completed/favorited route counts.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile "Aggregated profile"
// @Failure 401 "Not authenticated"
// @Router /users/me/profile [get]
func NewProfileHandler(svc ProfileBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		profile, err := svc.BuildProfile(r.Context(), user)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

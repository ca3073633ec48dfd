package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
	"github.com/rexapp/rex-backend/internal/services"
)

// FavoriteRemover defines the interface for removing a favorite.
type FavoriteRemover interface {
	Remove(ctx context.Context, userID, routeID string) error
}

// NewFavoriteRemoveHandler returns an HTTP handler that un-favorites a route.
// Removing a route that is not a favorite is a no-op.
// @Summary Remove a favorite
// @Tags favorites
// @Security BearerAuth
// @Param routeID path string true "Route id"
// @Success 204 "Favorite removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid route id"
// @Failure 401 "Not authenticated"
// @Router /favorites/{routeID} [delete]
func NewFavoriteRemoveHandler(svc FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		err := svc.Remove(r.Context(), user.ID.Hex(), chi.URLParam(r, "routeID"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

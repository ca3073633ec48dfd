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

// FavoriteAdder defines the interface for adding a favorite.
type FavoriteAdder interface {
	Add(ctx context.Context, userID, routeID string) error
}

// NewFavoriteAddHandler returns an HTTP handler that favorites a route.
// Adding the same route twice is a no-op.
// @Summary Add a favorite
// @Description Marks a route as favorite. The route must be public or owned by the caller.
// @Tags favorites
// @Security BearerAuth
// @Param routeID path string true "Route id"
// @Success 204 "Favorite added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid route id"
// @Failure 401 "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Route not found or not accessible"
// @Router /favorites/{routeID} [post]
func NewFavoriteAddHandler(svc FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		err := svc.Add(r.Context(), user.ID.Hex(), chi.URLParam(r, "routeID"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrRouteNotFoundOrForbidden):
				writeError(w, http.StatusNotFound, "Route not found or not accessible")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

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

// RouteDeleter defines the interface for deleting a route.
type RouteDeleter interface {
	Delete(ctx context.Context, routeID, requesterID string) error
}

// NewRouteDeleteHandler returns an HTTP handler for owner-only route deletion.
// @Summary Delete a route
// @Description Deletes a route owned by the authenticated user
// @Tags routes
// @Security BearerAuth
// @Param routeID path string true "Route id"
// @Success 204 "Route deleted"
// @Failure 401 "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Route not found or not accessible"
// @Router /routes/{routeID} [delete]
func NewRouteDeleteHandler(svc RouteDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		err := svc.Delete(r.Context(), chi.URLParam(r, "routeID"), user.ID.Hex())
		if err != nil {
			switch {
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

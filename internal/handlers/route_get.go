package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/services"
)

// RouteGetter defines the interface for reading a single route.
type RouteGetter interface {
	Get(ctx context.Context, routeID, requesterID string) (*models.RouteDB, error)
}

// NewRouteGetHandler returns an HTTP handler for reading a route by id.
// Missing routes and foreign private routes produce the same 404.
// @Summary Get a route
// @Tags routes
// @Produce json
// @Security BearerAuth
// @Param routeID path string true "Route id"
// @Success 200 {object} handlers.RouteResponse "Route"
// @Failure 401 "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Route not found or not accessible"
// @Router /routes/{routeID} [get]
func NewRouteGetHandler(svc RouteGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		route, err := svc.Get(r.Context(), chi.URLParam(r, "routeID"), user.ID.Hex())
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

		writeJSON(w, http.StatusOK, newRouteResponse(route))
	}
}

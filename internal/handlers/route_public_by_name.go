package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/services"
)

// PublicByNameFinder defines the interface for the cross-owner public lookup.
type PublicByNameFinder interface {
	FindPublicByName(ctx context.Context, name string) (*models.RouteDB, error)
}

// NewRoutePublicByNameHandler returns an HTTP handler that finds a public
// route by name regardless of its owner.
// @Summary Find a public route by name
// @Tags routes
// @Produce json
// @Param name query string true "Route name"
// @Success 200 {object} handlers.RouteResponse "Public route"
// @Failure 400 {object} handlers.ErrorResponse "Missing name"
// @Failure 404 {object} handlers.ErrorResponse "No public route with that name"
// @Router /routes/public/by-name [get]
func NewRoutePublicByNameHandler(svc PublicByNameFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, "name query parameter is required")
			return
		}

		route, err := svc.FindPublicByName(r.Context(), name)
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

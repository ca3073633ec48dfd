package handlers

import (
	"context"
	"net/http"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
)

// PublicRouteLister defines the interface for listing public routes.
type PublicRouteLister interface {
	ListPublic(ctx context.Context) ([]models.RouteDB, error)
}

// NewRouteListHandler returns an HTTP handler listing all public routes.
// @Summary List public routes
// @Tags routes
// @Produce json
// @Success 200 {array} handlers.RouteResponse "Public routes"
// @Router /routes [get]
func NewRouteListHandler(svc PublicRouteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routes, err := svc.ListPublic(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, newRouteListResponse(routes))
	}
}

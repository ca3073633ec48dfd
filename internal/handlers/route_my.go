package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
	"github.com/rexapp/rex-backend/internal/models"
)

// OwnRouteLister defines the interface for listing a user's own routes.
type OwnRouteLister interface {
	ListMine(ctx context.Context, ownerID string, visibility *bool, skip, limit int64) ([]models.RouteDB, error)
}

// NewRouteMyHandler returns an HTTP handler listing the session user's routes.
// Supports optional visibility, skip and limit query parameters.
// @Summary List own routes
// @Tags routes
// @Produce json
// @Security BearerAuth
// @Param visibility query bool false "Filter by visibility"
// @Param skip query int false "Pagination offset"
// @Param limit query int false "Pagination limit"
// @Success 200 {array} handlers.RouteResponse "Own routes"
// @Failure 401 "Not authenticated"
// @Router /routes/me [get]
func NewRouteMyHandler(svc OwnRouteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()

		var visibility *bool
		if v := q.Get("visibility"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid visibility filter")
				return
			}
			visibility = &parsed
		}

		skip, _ := strconv.ParseInt(q.Get("skip"), 10, 64)
		limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)

		routes, err := svc.ListMine(r.Context(), user.ID.Hex(), visibility, skip, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, newRouteListResponse(routes))
	}
}

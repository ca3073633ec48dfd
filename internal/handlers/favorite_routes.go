package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
	"github.com/rexapp/rex-backend/internal/models"
)

// FavoritePageResolver defines the interface for resolving a favorites page
// to full routes.
type FavoritePageResolver interface {
	ResolvePage(ctx context.Context, userID string, skip, limit int) ([]models.RouteDB, error)
}

// NewFavoriteRoutesHandler returns an HTTP handler that resolves a page of
// the session user's favorites to full routes, in favorite order. Favorites
// whose route was deleted are omitted.
// @Summary List favorite routes
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Pagination offset over the favorite list"
// @Param limit query int false "Pagination limit"
// @Success 200 {array} handlers.RouteResponse "Favorite routes page"
// @Failure 401 "Not authenticated"
// @Router /users/me/routes/favorites [get]
func NewFavoriteRoutesHandler(svc FavoritePageResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		skip, _ := strconv.Atoi(q.Get("skip"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		routes, err := svc.ResolvePage(r.Context(), user.ID.Hex(), skip, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, newRouteListResponse(routes))
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
)

// FavoriteLister defines the interface for listing favorite route ids.
type FavoriteLister interface {
	List(ctx context.Context, userID string) ([]string, error)
}

// FavoriteListResponse holds the favorite route ids in favorite order
// swagger:model FavoriteListResponse
type FavoriteListResponse struct {
	RouteIDs []string `json:"route_ids"`
}

// NewFavoriteListHandler returns an HTTP handler listing the session user's
// favorite route ids. Creates the (empty) favorite set on first use.
// @Summary List favorite route ids
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.FavoriteListResponse "Favorite route ids"
// @Failure 401 "Not authenticated"
// @Router /favorites/me [get]
func NewFavoriteListHandler(svc FavoriteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ids, err := svc.List(r.Context(), user.ID.Hex())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if ids == nil {
			ids = []string{}
		}

		writeJSON(w, http.StatusOK, FavoriteListResponse{RouteIDs: ids})
	}
}

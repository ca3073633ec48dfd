package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
)

// FavoriteChecker defines the interface for the membership probe.
type FavoriteChecker interface {
	IsFavorite(ctx context.Context, userID, routeID string) (bool, error)
}

// FavoriteCheckResponse reports favorite membership
// swagger:model FavoriteCheckResponse
type FavoriteCheckResponse struct {
	RouteID    string `json:"route_id"`
	IsFavorite bool   `json:"is_favorite"`
}

// NewFavoriteCheckHandler returns an HTTP handler reporting whether a route
// is in the session user's favorite set.
// @Summary Check favorite membership
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param routeID path string true "Route id"
// @Success 200 {object} handlers.FavoriteCheckResponse "Membership"
// @Failure 401 "Not authenticated"
// @Router /favorites/me/{routeID} [get]
func NewFavoriteCheckHandler(svc FavoriteChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		routeID := chi.URLParam(r, "routeID")
		isFav, err := svc.IsFavorite(r.Context(), user.ID.Hex(), routeID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, FavoriteCheckResponse{RouteID: routeID, IsFavorite: isFav})
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
)

// NameChecker defines the interface for per-owner route name availability.
type NameChecker interface {
	CheckName(ctx context.Context, ownerID, name string) (bool, error)
}

// CheckNameResponse reports whether a route name is already used
// swagger:model CheckNameResponse
type CheckNameResponse struct {
	Name  string `json:"name"`
	Taken bool   `json:"taken"`
}

// NewRouteCheckNameHandler returns an HTTP handler that checks whether the
// session user already has a route with the given name.
// @Summary Check route name availability
// @Tags routes
// @Produce json
// @Security BearerAuth
// @Param name query string true "Route name"
// @Success 200 {object} handlers.CheckNameResponse "Availability"
// @Failure 400 {object} handlers.ErrorResponse "Missing name"
// @Failure 401 "Not authenticated"
// @Router /routes/check-name [get]
func NewRouteCheckNameHandler(svc NameChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, "name query parameter is required")
			return
		}

		taken, err := svc.CheckName(r.Context(), user.ID.Hex(), name)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, CheckNameResponse{Name: name, Taken: taken})
	}
}

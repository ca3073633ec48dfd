package handlers

import (
	"net/http"

	"github.com/rexapp/rex-backend/internal/middlewares"
)

// MeResponse represents the authenticated user's identity
// swagger:model MeResponse
type MeResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

// NewMeHandler returns an HTTP handler that reports the session user.
// @Summary Current user
// @Description Returns the identity of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MeResponse "Authenticated user"
// @Failure 401 "Not authenticated"
// @Router /auth/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{
			ID:       user.ID.Hex(),
			Email:    user.Email,
			Username: user.Username,
			IsActive: user.IsActive,
		})
	}
}

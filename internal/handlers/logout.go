package handlers

import (
	"net/http"

	"github.com/rexapp/rex-backend/internal/jwt"
)

// NewLogoutHandler returns an HTTP handler that clears the session cookies.
// @Summary Log out
// @Description Removes the session cookies
// @Tags auth
// @Success 204 "Session cookies cleared"
// @Router /auth/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setSessionCookie(w, jwt.AccessTokenCookie, "", -1)
		setSessionCookie(w, jwt.RefreshTokenCookie, "", -1)
		w.WriteHeader(http.StatusNoContent)
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rexapp/rex-backend/internal/jwt"
	"github.com/rexapp/rex-backend/internal/logger"
)

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// NewRefreshHandler returns an HTTP handler that renews the access token
// using the refresh token cookie.
// @Summary Refresh access token
// @Description Exchanges the refresh_token cookie for a new access token and resets its cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.TokenResponse "New access token issued"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid refresh token"
// @Router /auth/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(jwt.RefreshTokenCookie)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "No refresh token")
			return
		}

		access, err := svc.Refresh(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, jwt.ErrInvalidToken) {
				logger.Log.Errorw("refresh failed", "err", err)
			}
			writeError(w, http.StatusUnauthorized, "Invalid refresh token")
			return
		}

		setSessionCookie(w, jwt.AccessTokenCookie, access, accessCookieMaxAge)

		writeJSON(w, http.StatusOK, TokenResponse{
			AccessToken:  access,
			RefreshToken: cookie.Value,
			TokenType:    "bearer",
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rexapp/rex-backend/internal/jwt"
	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/services"
)

const (
	accessCookieMaxAge  = 60 * 30
	refreshCookieMaxAge = 60 * 60 * 24 * 7
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (access, refresh string, err error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: pw123456
	Password string `json:"password"`
}

// TokenResponse represents the issued session tokens
// swagger:model TokenResponse
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// setSessionCookie sets an httponly lax cookie for a token.
func setSessionCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by email and password, set session cookies and return access and refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.TokenResponse "Tokens issued"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		access, refresh, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		setSessionCookie(w, jwt.AccessTokenCookie, access, accessCookieMaxAge)
		setSessionCookie(w, jwt.RefreshTokenCookie, refresh, refreshCookieMaxAge)

		writeJSON(w, http.StatusOK, TokenResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "bearer",
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, username string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: pw123456
	Password string `json:"password"`

	// Username
	// required: true
	// default: alice
	Username string `json:"username"`
}

// RegisterResponse represents the public view of a freshly created user
// swagger:model RegisterResponse
type RegisterResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email and username. Password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Email or username already registered"
// @Router /users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Email or username already registered")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			ID:       user.ID.Hex(),
			Email:    user.Email,
			Username: user.Username,
			IsActive: user.IsActive,
		})
	}
}

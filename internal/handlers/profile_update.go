package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/services"
)

// ProfileUpdater defines the interface for partial profile updates.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID string, patch models.UserPatch) (*models.UserDB, error)
}

// ProfileUpdateResponse represents the updated user record
// swagger:model ProfileUpdateResponse
type ProfileUpdateResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Username       string  `json:"username"`
	Phone          *string `json:"phone,omitempty"`
	PreferredUnits string  `json:"preferred_units"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
}

// decodePatch reads a partial update body. An explicit null for phone or
// avatar_url requests unsetting the field; an absent key leaves it untouched.
func decodePatch(r *http.Request) (models.UserPatch, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return models.UserPatch{}, err
	}

	var patch models.UserPatch

	if v, ok := raw["username"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return patch, err
		}
		patch.Username = &s
	}
	if v, ok := raw["preferred_units"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return patch, err
		}
		patch.PreferredUnits = &s
	}
	if v, ok := raw["phone"]; ok {
		if string(v) == "null" {
			patch.ClearPhone = true
		} else {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return patch, err
			}
			patch.Phone = &s
		}
	}
	if v, ok := raw["avatar_url"]; ok {
		if string(v) == "null" {
			patch.ClearAvatar = true
		} else {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return patch, err
			}
			patch.AvatarURL = &s
		}
	}

	return patch, nil
}

// NewProfileUpdateHandler returns an HTTP handler for partial profile updates.
// @Summary Update own profile
// @Description Partially updates username, phone, preferred_units or avatar_url. Null phone/avatar_url clears the field.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profilePatch body object true "Fields to update"
// @Success 200 {object} handlers.ProfileUpdateResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 "Not authenticated"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Router /users/me/profile [patch]
func NewProfileUpdateHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		patch, err := decodePatch(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), user.ID.Hex(), patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusConflict, "Username already taken")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		if updated == nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, ProfileUpdateResponse{
			ID:             updated.ID.Hex(),
			Email:          updated.Email,
			Username:       updated.Username,
			Phone:          updated.Phone,
			PreferredUnits: updated.PreferredUnits,
			AvatarURL:      updated.AvatarURL,
		})
	}
}

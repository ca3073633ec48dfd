package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/services"
)

// RouteCreator defines the interface that the route creation service must implement.
type RouteCreator interface {
	Create(ctx context.Context, ownerID string, spec models.RouteSpec) (*models.RouteDB, error)
}

// RouteCreateRequest represents the JSON body for route creation
// swagger:model RouteCreateRequest
type RouteCreateRequest struct {
	// Route name, unique per owner
	// required: true
	// default: Loop
	Name string `json:"name"`

	// Ordered geographic points, at least 3
	// required: true
	Points []models.Point `json:"points"`

	// Public visibility
	// default: false
	Visibility bool `json:"visibility"`

	// Description
	// required: true
	// default: d
	Description string `json:"description"`

	// Category
	// required: true
	// default: c
	Category string `json:"category"`

	// Estimated duration in minutes
	DurationMinutes *int `json:"duration_minutes,omitempty"`

	// Rating in [0,5]
	Rating *float64 `json:"rating,omitempty"`
}

// RouteResponse represents a route in API responses
// swagger:model RouteResponse
type RouteResponse struct {
	ID              string         `json:"id"`
	OwnerID         string         `json:"owner_id"`
	Name            string         `json:"name"`
	Points          []models.Point `json:"points"`
	Visibility      bool           `json:"visibility"`
	Description     string         `json:"description"`
	Category        string         `json:"category"`
	DurationMinutes *int           `json:"duration_minutes,omitempty"`
	Rating          *float64       `json:"rating,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// newRouteResponse maps a route document to its API representation.
func newRouteResponse(route *models.RouteDB) RouteResponse {
	return RouteResponse{
		ID:              route.ID.Hex(),
		OwnerID:         route.OwnerID,
		Name:            route.Name,
		Points:          route.Points,
		Visibility:      route.Visibility,
		Description:     route.Description,
		Category:        route.Category,
		DurationMinutes: route.DurationMinutes,
		Rating:          route.Rating,
		CreatedAt:       route.CreatedAt,
	}
}

// newRouteListResponse maps a slice of route documents.
func newRouteListResponse(routes []models.RouteDB) []RouteResponse {
	out := make([]RouteResponse, 0, len(routes))
	for i := range routes {
		out = append(out, newRouteResponse(&routes[i]))
	}
	return out
}

// NewRouteCreateHandler returns an HTTP handler for route creation.
// @Summary Create a route
// @Description Creates a route owned by the authenticated user. The name must be unique among the owner's routes.
// @Tags routes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param routeCreateRequest body handlers.RouteCreateRequest true "Route creation request"
// @Success 201 {object} handlers.RouteResponse "Route created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 "Not authenticated"
// @Failure 409 {object} handlers.ErrorResponse "Route name already used"
// @Router /routes [post]
func NewRouteCreateHandler(svc RouteCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req RouteCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		route, err := svc.Create(r.Context(), user.ID.Hex(), models.RouteSpec{
			Name:            req.Name,
			Points:          req.Points,
			Visibility:      req.Visibility,
			Description:     req.Description,
			Category:        req.Category,
			DurationMinutes: req.DurationMinutes,
			Rating:          req.Rating,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrRouteNameTaken):
				writeError(w, http.StatusConflict, "Route name already used")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, newRouteResponse(route))
	}
}

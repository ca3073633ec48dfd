package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/repositories"
)

// Error variables
var (
	ErrRouteNameTaken = errors.New("route name already used by this owner")

	// ErrRouteNotFoundOrForbidden merges "does not exist" and "not allowed"
	// so callers cannot probe for foreign private routes.
	ErrRouteNotFoundOrForbidden = errors.New("route not found or not accessible")

	// ErrValidation is wrapped by all input validation failures.
	ErrValidation = errors.New("validation failed")
)

const (
	maxRouteNameLen = 30
	minRoutePoints  = 3
)

// RouteReader defines read-only operations for routes.
type RouteReader interface {
	GetByID(ctx context.Context, routeID string) (*models.RouteDB, error)
	ListPublic(ctx context.Context) ([]models.RouteDB, error)
	ListByOwner(ctx context.Context, ownerID string, visibility *bool, skip, limit int64) ([]models.RouteDB, error)
	GetByOwnerAndName(ctx context.Context, ownerID, name string) (*models.RouteDB, error)
	GetPublicByName(ctx context.Context, name string) (*models.RouteDB, error)
}

// RouteWriter defines write operations for routes.
type RouteWriter interface {
	Save(ctx context.Context, route *models.RouteDB) error
	Delete(ctx context.Context, routeID, requesterID string) (bool, error)
}

// RouteService handles route creation, lookup and deletion.
type RouteService struct {
	reader      RouteReader
	writer      RouteWriter
	kafkaWriter KafkaWriter
}

// NewRouteService creates a new RouteService instance.
func NewRouteService(reader RouteReader, writer RouteWriter, kafkaWriter KafkaWriter) *RouteService {
	return &RouteService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// validateSpec checks structural constraints. Runs before any persistence
// side effect.
func validateSpec(spec models.RouteSpec) error {
	if strings.TrimSpace(spec.Name) == "" {
		return fmt.Errorf("%w: route name is required", ErrValidation)
	}
	if len(spec.Name) > maxRouteNameLen {
		return fmt.Errorf("%w: route name must be at most %d characters", ErrValidation, maxRouteNameLen)
	}
	if len(spec.Points) < minRoutePoints {
		return fmt.Errorf("%w: a route needs at least %d points", ErrValidation, minRoutePoints)
	}
	if strings.TrimSpace(spec.Description) == "" {
		return fmt.Errorf("%w: route description is required", ErrValidation)
	}
	if strings.TrimSpace(spec.Category) == "" {
		return fmt.Errorf("%w: route category is required", ErrValidation)
	}
	if spec.Rating != nil && (*spec.Rating < 0 || *spec.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}
	return nil
}

// Create validates and persists a new route for the owner. Name uniqueness is
// scoped per owner: the pre-check catches the common case and the
// (owner_id, name) unique index closes the race, both reported as
// ErrRouteNameTaken.
func (svc *RouteService) Create(ctx context.Context, ownerID string, spec models.RouteSpec) (*models.RouteDB, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByOwnerAndName(ctx, ownerID, spec.Name)
	if err != nil {
		logger.Log.Errorw("failed to check route name", "owner_id", ownerID, "name", spec.Name, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRouteNameTaken
	}

	route := &models.RouteDB{
		OwnerID:         ownerID,
		Name:            spec.Name,
		Points:          spec.Points,
		Visibility:      spec.Visibility,
		Description:     spec.Description,
		Category:        spec.Category,
		DurationMinutes: spec.DurationMinutes,
		Rating:          spec.Rating,
	}

	if err := svc.writer.Save(ctx, route); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrRouteNameTaken
		}
		logger.Log.Errorw("failed to save route", "owner_id", ownerID, "name", spec.Name, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent("route_created", ownerID, route.ID.Hex()))

	return route, nil
}

// Get returns a route readable by the requester: public routes for anyone,
// private routes only for their owner.
func (svc *RouteService) Get(ctx context.Context, routeID, requesterID string) (*models.RouteDB, error) {
	route, err := svc.reader.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, ErrRouteNotFoundOrForbidden
	}
	if !route.Visibility && route.OwnerID != requesterID {
		return nil, ErrRouteNotFoundOrForbidden
	}
	return route, nil
}

// ListPublic returns all public routes.
func (svc *RouteService) ListPublic(ctx context.Context) ([]models.RouteDB, error) {
	return svc.reader.ListPublic(ctx)
}

// ListMine returns the requester's own routes with optional visibility filter
// and pagination.
func (svc *RouteService) ListMine(ctx context.Context, ownerID string, visibility *bool, skip, limit int64) ([]models.RouteDB, error) {
	return svc.reader.ListByOwner(ctx, ownerID, visibility, skip, limit)
}

// CheckName reports whether the owner already has a route with the name.
func (svc *RouteService) CheckName(ctx context.Context, ownerID, name string) (bool, error) {
	route, err := svc.reader.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return false, err
	}
	return route != nil, nil
}

// FindPublicByName returns a public route with the given name regardless of
// owner.
func (svc *RouteService) FindPublicByName(ctx context.Context, name string) (*models.RouteDB, error) {
	route, err := svc.reader.GetPublicByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, ErrRouteNotFoundOrForbidden
	}
	return route, nil
}

// Delete removes the requester's route. Missing route and foreign route are
// the same failure.
func (svc *RouteService) Delete(ctx context.Context, routeID, requesterID string) error {
	ok, err := svc.writer.Delete(ctx, routeID, requesterID)
	if err != nil {
		logger.Log.Errorw("failed to delete route", "route_id", routeID, "err", err)
		return err
	}
	if !ok {
		return ErrRouteNotFoundOrForbidden
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent("route_deleted", requesterID, routeID))

	return nil
}

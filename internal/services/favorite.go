package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
)

// FavoriteStore defines the per-user favorite set operations.
type FavoriteStore interface {
	Add(ctx context.Context, userID, routeID string) error
	Remove(ctx context.Context, userID, routeID string) error
	List(ctx context.Context, userID string) ([]string, error)
	IsFavorite(ctx context.Context, userID, routeID string) (bool, error)
}

// RouteGetter defines the route lookups the favorite service needs.
type RouteGetter interface {
	GetByID(ctx context.Context, routeID string) (*models.RouteDB, error)
	GetByIDs(ctx context.Context, routeIDs []string) ([]models.RouteDB, error)
}

// FavoriteService maintains favorite sets and resolves them to routes.
type FavoriteService struct {
	favorites FavoriteStore
	routes    RouteGetter
}

// NewFavoriteService creates a new FavoriteService instance.
func NewFavoriteService(favorites FavoriteStore, routes RouteGetter) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		routes:    routes,
	}
}

// Add marks a route as favorite. The target must exist and be public or owned
// by the requester; the set update itself is idempotent.
func (svc *FavoriteService) Add(ctx context.Context, userID, routeID string) error {
	if _, err := primitive.ObjectIDFromHex(routeID); err != nil {
		return fmt.Errorf("%w: invalid route id", ErrValidation)
	}

	route, err := svc.routes.GetByID(ctx, routeID)
	if err != nil {
		logger.Log.Errorw("failed to load favorite target", "route_id", routeID, "err", err)
		return err
	}
	if route == nil {
		return ErrRouteNotFoundOrForbidden
	}
	if !route.Visibility && route.OwnerID != userID {
		return ErrRouteNotFoundOrForbidden
	}

	return svc.favorites.Add(ctx, userID, routeID)
}

// Remove un-favorites a route. Removing a non-member id is a no-op.
func (svc *FavoriteService) Remove(ctx context.Context, userID, routeID string) error {
	if _, err := primitive.ObjectIDFromHex(routeID); err != nil {
		return fmt.Errorf("%w: invalid route id", ErrValidation)
	}

	return svc.favorites.Remove(ctx, userID, routeID)
}

// List returns the user's favorite route ids in favorite order.
func (svc *FavoriteService) List(ctx context.Context, userID string) ([]string, error) {
	return svc.favorites.List(ctx, userID)
}

// IsFavorite reports whether the route is in the user's favorite set.
func (svc *FavoriteService) IsFavorite(ctx context.Context, userID, routeID string) (bool, error) {
	return svc.favorites.IsFavorite(ctx, userID, routeID)
}

// ResolvePage returns one page of the user's favorite routes. The id list is
// sliced before the batch fetch, results are re-sorted to favorite order
// (the batch fetch does not preserve it), and ids whose route no longer
// exists are dropped silently.
func (svc *FavoriteService) ResolvePage(ctx context.Context, userID string, skip, limit int) ([]models.RouteDB, error) {
	ids, err := svc.favorites.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	if skip < 0 {
		skip = 0
	}
	if skip >= len(ids) {
		return []models.RouteDB{}, nil
	}
	end := len(ids)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	page := ids[skip:end]
	if len(page) == 0 {
		return []models.RouteDB{}, nil
	}

	fetched, err := svc.routes.GetByIDs(ctx, page)
	if err != nil {
		logger.Log.Errorw("failed to resolve favorite routes", "user_id", userID, "err", err)
		return nil, err
	}

	byID := make(map[string]models.RouteDB, len(fetched))
	for _, route := range fetched {
		byID[route.ID.Hex()] = route
	}

	resolved := make([]models.RouteDB, 0, len(page))
	for _, id := range page {
		if route, ok := byID[id]; ok {
			resolved = append(resolved, route)
		}
	}
	return resolved, nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
)

const routesCollection = "routes"

type RouteReadRepository struct {
	db *mongo.Database
}

func NewRouteReadRepository(db *mongo.Database) *RouteReadRepository {
	return &RouteReadRepository{db: db}
}

// GetByID returns a route by hex id, or nil if the id is malformed or no
// route exists.
func (r *RouteReadRepository) GetByID(ctx context.Context, routeID string) (*models.RouteDB, error) {
	oid, err := primitive.ObjectIDFromHex(routeID)
	if err != nil {
		return nil, nil
	}

	var route models.RouteDB
	err = r.db.Collection(routesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&route)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to find route by id", "route_id", routeID, "error", err)
		return nil, err
	}

	return &route, nil
}

// GetByIDs batch-fetches routes by hex ids. Malformed ids are skipped and
// missing routes are simply absent from the result. The result order is
// whatever the store returns; callers needing a specific order re-sort.
func (r *RouteReadRepository) GetByIDs(ctx context.Context, routeIDs []string) ([]models.RouteDB, error) {
	oids := make([]primitive.ObjectID, 0, len(routeIDs))
	for _, id := range routeIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}

	cur, err := r.db.Collection(routesCollection).Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		logger.Log.Errorw("failed to batch-fetch routes", "count", len(oids), "error", err)
		return nil, err
	}

	var routes []models.RouteDB
	if err := cur.All(ctx, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// ListPublic returns all routes with public visibility.
func (r *RouteReadRepository) ListPublic(ctx context.Context) ([]models.RouteDB, error) {
	return r.list(ctx, bson.M{"visibility": true}, nil)
}

// ListAll returns every route regardless of visibility.
func (r *RouteReadRepository) ListAll(ctx context.Context) ([]models.RouteDB, error) {
	return r.list(ctx, bson.M{}, nil)
}

// ListByOwner returns the owner's routes, optionally filtered by visibility,
// paginated with skip/limit (limit <= 0 means no limit).
func (r *RouteReadRepository) ListByOwner(ctx context.Context, ownerID string, visibility *bool, skip, limit int64) ([]models.RouteDB, error) {
	filter := bson.M{"owner_id": ownerID}
	if visibility != nil {
		filter["visibility"] = *visibility
	}

	opts := options.Find().SetSkip(skip)
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return r.list(ctx, filter, opts)
}

// GetByOwnerAndName returns the owner's route with the given name, or nil.
// Used for the uniqueness pre-check and the check-name endpoint.
func (r *RouteReadRepository) GetByOwnerAndName(ctx context.Context, ownerID, name string) (*models.RouteDB, error) {
	return r.findOne(ctx, bson.M{"owner_id": ownerID, "name": name})
}

// GetPublicByName returns a public route with the given name regardless of
// owner, or nil.
func (r *RouteReadRepository) GetPublicByName(ctx context.Context, name string) (*models.RouteDB, error) {
	return r.findOne(ctx, bson.M{"name": name, "visibility": true})
}

// CountByOwner counts the routes created by a user.
func (r *RouteReadRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	n, err := r.db.Collection(routesCollection).CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		logger.Log.Errorw("failed to count routes", "owner_id", ownerID, "error", err)
		return 0, err
	}
	return n, nil
}

func (r *RouteReadRepository) findOne(ctx context.Context, filter bson.M) (*models.RouteDB, error) {
	var route models.RouteDB
	err := r.db.Collection(routesCollection).FindOne(ctx, filter).Decode(&route)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to find route", "filter", filter, "error", err)
		return nil, err
	}

	return &route, nil
}

func (r *RouteReadRepository) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.RouteDB, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.db.Collection(routesCollection).Find(ctx, filter, opts)
	} else {
		cur, err = r.db.Collection(routesCollection).Find(ctx, filter)
	}
	if err != nil {
		logger.Log.Errorw("failed to list routes", "filter", filter, "error", err)
		return nil, err
	}

	var routes []models.RouteDB
	if err := cur.All(ctx, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

type RouteWriteRepository struct {
	db *mongo.Database
}

func NewRouteWriteRepository(db *mongo.Database) *RouteWriteRepository {
	return &RouteWriteRepository{db: db}
}

// Save inserts a new route document and fills in its generated id. A
// (owner_id, name) unique-index violation surfaces as ErrDuplicateKey.
func (r *RouteWriteRepository) Save(ctx context.Context, route *models.RouteDB) error {
	route.CreatedAt = time.Now().UTC()

	res, err := r.db.Collection(routesCollection).InsertOne(ctx, route)
	if err != nil {
		logger.Log.Errorw("failed to insert route", "owner_id", route.OwnerID, "name", route.Name, "error", err)
		return translateWriteError(err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		route.ID = oid
	}
	return nil
}

// Delete removes a route only if it belongs to the requester. Returns whether
// a document was deleted; a missing route and a foreign route are not
// distinguished.
func (r *RouteWriteRepository) Delete(ctx context.Context, routeID, requesterID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(routeID)
	if err != nil {
		return false, nil
	}

	res, err := r.db.Collection(routesCollection).DeleteOne(ctx, bson.M{"_id": oid, "owner_id": requesterID})
	if err != nil {
		logger.Log.Errorw("failed to delete route", "route_id", routeID, "error", err)
		return false, err
	}

	return res.DeletedCount == 1, nil
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Point is a single geographic coordinate of a route. Points are stored
// opaquely; no geospatial computation happens server-side.
type Point struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// RouteDB represents a route document in the "routes" collection.
// (owner_id, name) is unique.
type RouteDB struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID         string             `bson:"owner_id" json:"owner_id"` // Hex id of the owning user
	Name            string             `bson:"name" json:"name"`
	Points          []Point            `bson:"points" json:"points"`
	Visibility      bool               `bson:"visibility" json:"visibility"` // true = public
	Description     string             `bson:"description" json:"description"`
	Category        string             `bson:"category" json:"category"`
	DurationMinutes *int               `bson:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	Rating          *float64           `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// RouteSpec is the input for creating a route.
type RouteSpec struct {
	Name            string
	Points          []Point
	Visibility      bool
	Description     string
	Category        string
	DurationMinutes *int
	Rating          *float64
}

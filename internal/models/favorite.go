package models

import "time"

// FavoriteSetDB represents a per-user favorites document in the "favorites"
// collection. The document is keyed by the user's hex id and is created
// lazily on first read or write. RouteIDs holds no duplicates and keeps
// insertion order, which is the favorite order.
type FavoriteSetDB struct {
	UserID    string    `bson:"_id" json:"user_id"`
	RouteIDs  []string  `bson:"route_ids" json:"route_ids"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

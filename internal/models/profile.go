package models

// ProfileStats holds per-user counters computed from independent read-only
// queries; they are a best-effort snapshot, not a consistent view.
type ProfileStats struct {
	RoutesCreated   int64 `json:"routes_created"`
	RoutesCompleted int64 `json:"routes_completed"`
	RoutesFavorites int64 `json:"routes_favorites"`
}

// Profile combines a user's public data with usage statistics.
type Profile struct {
	ID             string       `json:"id"`
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	Phone          *string      `json:"phone,omitempty"`
	PreferredUnits string       `json:"preferred_units"`
	AvatarURL      *string      `json:"avatar_url,omitempty"`
	Stats          ProfileStats `json:"stats"`
}

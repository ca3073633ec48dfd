package models

// Event is a domain event published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"` // Unix seconds
	Type      string `json:"type"`      // user_registered, route_created, route_deleted
	UserID    string `json:"user_id"`
	RouteID   string `json:"route_id,omitempty"`
}

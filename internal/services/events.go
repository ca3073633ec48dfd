package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// newEvent builds a domain event with a fresh id and current timestamp.
func newEvent(eventType, userID, routeID string) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Type:      eventType,
		UserID:    userID,
		RouteID:   routeID,
	}
}

// publishEvent publishes a domain event to Kafka. A nil writer skips
// publishing; publish failures are logged, never surfaced to the caller.
func publishEvent(ctx context.Context, w KafkaWriter, evt models.Event) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "type", evt.Type)
	}
}

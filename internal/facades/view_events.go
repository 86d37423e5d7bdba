package facades

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/archive-viewer/internal/logger"
	"github.com/sbilibin2017/archive-viewer/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=view_events.go -destination=mock_view_events.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ViewEventKafkaFacade publishes archive view events to Kafka.
type ViewEventKafkaFacade struct {
	writer KafkaWriter
}

// NewViewEventKafkaFacade creates a new facade with a Kafka writer.
func NewViewEventKafkaFacade(writer KafkaWriter) *ViewEventKafkaFacade {
	return &ViewEventKafkaFacade{writer: writer}
}

// PublishViewEvent writes the event as JSON keyed by the viewed user id.
func (f *ViewEventKafkaFacade) PublishViewEvent(ctx context.Context, event models.ViewEvent) error {
	if f.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal view event", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish view event to Kafka", "event_id", event.EventID, "error", err)
		return err
	}

	logger.Log.Debugw("view event published to Kafka", "event_id", event.EventID, "view", event.View)
	return nil
}

// Close closes the underlying writer.
func (f *ViewEventKafkaFacade) Close() error {
	if f.writer == nil {
		return nil
	}
	return f.writer.Close()
}

package kafka

import (
	"context"
	"log/slog"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
)

// LogPublisher writes audit events to the structured log instead of a
// broker. Used when no Kafka broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a log-backed event publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(_ context.Context, event events.Event) {
	p.logger.Info("audit event",
		"id", event.ID,
		"type", event.Type,
		"key", event.Key,
		"occurredAt", event.OccurredAt)
}

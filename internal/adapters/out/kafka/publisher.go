// Package kafka publishes audit events to a Kafka topic. Publishing is
// best-effort: handlers call Publish after their transaction commits, and a
// broker failure is logged rather than surfaced to the caller.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	segmentio "github.com/segmentio/kafka-go"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
)

// Writer is the subset of the segmentio kafka.Writer used by the publisher.
// Narrowed for testability.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...segmentio.Message) error
	Close() error
}

// EventPublisher writes audit events to one Kafka topic, keyed so events of
// the same shipment or account land on the same partition in order.
type EventPublisher struct {
	writer Writer
	logger *slog.Logger
}

// NewEventPublisher creates a publisher writing to the given broker and topic.
func NewEventPublisher(brokerURL, topic string, logger *slog.Logger) *EventPublisher {
	writer := &segmentio.Writer{
		Addr:     segmentio.TCP(brokerURL),
		Topic:    topic,
		Balancer: &segmentio.LeastBytes{},
	}

	return NewEventPublisherWithWriter(writer, logger)
}

// NewEventPublisherWithWriter creates a publisher around an existing writer.
func NewEventPublisherWithWriter(writer Writer, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		writer: writer,
		logger: logger,
	}
}

// Publish serializes the event to JSON and writes it to the topic.
func (p *EventPublisher) Publish(ctx context.Context, event events.Event) {
	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal event",
			"type", event.Type,
			"key", event.Key,
			"error", err)
		return
	}

	msg := segmentio.Message{
		Key:   []byte(event.Key),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish event",
			"type", event.Type,
			"key", event.Key,
			"error", err)
		return
	}

	p.logger.Debug("event published",
		"type", event.Type,
		"key", event.Key)
}

// Close closes the underlying writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}

package ports

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
)

// EventPublisher delivers audit events to downstream consumers.
// Publishing happens after the owning transaction commits; implementations
// are best-effort and must not fail the business operation.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

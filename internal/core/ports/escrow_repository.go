package ports

import (
	"context"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
)

// EscrowRepository defines the persistence contract for escrow aggregates.
// Escrows are keyed by the shipment they fund.
type EscrowRepository interface {
	// Add persists a new escrow aggregate to storage.
	// Returns a DuplicateError when an escrow already exists for the shipment.
	Add(ctx context.Context, aggregate *escrow.Escrow) error

	// Update persists changes to an existing escrow aggregate.
	Update(ctx context.Context, aggregate *escrow.Escrow) error

	// Get retrieves the escrow for the given shipment.
	// Returns an ObjectNotFoundError when no escrow exists for the shipment.
	Get(ctx context.Context, shipmentID uint64) (*escrow.Escrow, error)

	// Exists reports whether an escrow is stored for the given shipment.
	Exists(ctx context.Context, shipmentID uint64) (bool, error)

	// GetAllActiveExpired retrieves all active escrows whose refund deadline
	// has passed at the given instant.
	GetAllActiveExpired(ctx context.Context, now time.Time) ([]*escrow.Escrow, error)
}

package ports

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// NextID issues the next sequential shipment identifier, starting at 1.
	NextID(ctx context.Context) (uint64, error)

	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate,
	// including newly attached documents.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its identifier with its
	// documents and content references.
	// Returns an ObjectNotFoundError when no shipment exists for the id.
	Get(ctx context.Context, id uint64) (*shipment.Shipment, error)

	// GetAllByParticipant retrieves all shipments where the given address
	// is the staff creator, the bound carrier, or the buyer, ordered by id
	// ascending.
	GetAllByParticipant(ctx context.Context, participant kernel.Address) ([]*shipment.Shipment, error)

	// Count returns the total number of shipments ever created.
	Count(ctx context.Context) (int64, error)
}

package ports

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase orders.
type OrderRepository interface {
	// NextID issues the next sequential order identifier, starting at 1.
	NextID(ctx context.Context) (uint64, error)

	// Add persists a new order to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError when no order exists for the id.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// GetAllByBuyer retrieves all orders placed by the given buyer,
	// ordered by id ascending.
	GetAllByBuyer(ctx context.Context, buyer kernel.Address) ([]*order.Order, error)
}

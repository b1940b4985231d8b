// Package orderrepo persists purchase orders, mapping between the domain
// model and the orders table.
package orderrepo

import (
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// Identifiers are issued from a sequence, not by the table itself.
type OrderDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement:false"`
	Buyer      string    `gorm:"size:128;index"`
	ContentRef string    `gorm:"size:512"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:         order.ID(),
		Buyer:      order.Buyer().String(),
		ContentRef: order.ContentRef().String(),
		CreatedAt:  order.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	buyer, err := kernel.NewAddress(dto.Buyer)
	if err != nil {
		return nil, err
	}

	contentRef, err := kernel.NewContentRef(dto.ContentRef)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, buyer, contentRef, dto.CreatedAt)
}

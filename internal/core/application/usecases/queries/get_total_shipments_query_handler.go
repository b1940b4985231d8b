package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTotalShipmentsQueryHandler counts shipments.
type GetTotalShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetTotalShipmentsQueryHandler creates a handler for shipment counting.
func NewGetTotalShipmentsQueryHandler(db *gorm.DB) GetTotalShipmentsQueryHandler {
	return GetTotalShipmentsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetTotalShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetTotalShipmentsQuery,
) (uint64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var total uint64

	row := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM shipments`).Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

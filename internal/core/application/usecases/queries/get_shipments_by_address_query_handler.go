package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
)

// GetShipmentsByAddressQueryHandler retrieves shipment summaries for one
// participant address.
type GetShipmentsByAddressQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsByAddressQueryHandler creates a handler for participant
// shipment listings.
func NewGetShipmentsByAddressQueryHandler(db *gorm.DB) GetShipmentsByAddressQueryHandler {
	return GetShipmentsByAddressQueryHandler{db: db}
}

// Handle executes the query, ordered by shipment id.
func (h GetShipmentsByAddressQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsByAddressQuery,
) ([]GetShipmentsByAddressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetShipmentsByAddressQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			staff,
			buyer,
			carrier,
			status,
			updated_at
		FROM shipments
		WHERE staff = @address OR buyer = @address OR carrier = @address
		ORDER BY id
	`, map[string]any{"address": query.Address()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetShipmentsByAddressQueryResponse
		if err = rows.Scan(
			&summary.ID,
			&summary.Staff,
			&summary.Buyer,
			&summary.Carrier,
			&summary.StatusCode,
			&summary.UpdatedAt,
		); err != nil {
			return nil, err
		}

		status, statusErr := shipment.StatusFromCode(summary.StatusCode)
		if statusErr != nil {
			return nil, statusErr
		}
		summary.Status = status.String()

		shipments = append(shipments, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

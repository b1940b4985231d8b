package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// GetShipmentQueryHandler retrieves a single shipment read model.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment lookups.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the shipment does not exist.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var response GetShipmentQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			staff,
			buyer,
			carrier,
			status,
			close_reason,
			created_at,
			updated_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID()).Row()

	err := row.Scan(
		&response.ID,
		&response.Staff,
		&response.Buyer,
		&response.Carrier,
		&response.StatusCode,
		&response.CloseReason,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"shipment", query.ShipmentID(), err)
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	status, err := shipment.StatusFromCode(response.StatusCode)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.Status = status.String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ref
		FROM shipment_content_refs
		WHERE shipment_id = ?
		ORDER BY position
	`, query.ShipmentID()).Rows()
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var ref string
		if err = rows.Scan(&ref); err != nil {
			return GetShipmentQueryResponse{}, err
		}
		response.ContentRefs = append(response.ContentRefs, ref)
	}
	if err = rows.Err(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return response, nil
}

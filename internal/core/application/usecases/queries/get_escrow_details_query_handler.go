package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// GetEscrowDetailsQueryHandler retrieves the escrow read model of a shipment.
type GetEscrowDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetEscrowDetailsQueryHandler creates a handler for escrow lookups.
func NewGetEscrowDetailsQueryHandler(db *gorm.DB) GetEscrowDetailsQueryHandler {
	return GetEscrowDetailsQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the shipment carries no escrow.
func (h GetEscrowDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetEscrowDetailsQuery,
) (GetEscrowDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEscrowDetailsQueryResponse{}, err
	}

	var (
		response   GetEscrowDetailsQueryResponse
		milestones [4]bool
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			shipment_id,
			buyer,
			carrier,
			total_amount,
			released_amount,
			milestone1,
			milestone2,
			milestone3,
			milestone4,
			deadline,
			active,
			completed
		FROM escrows
		WHERE shipment_id = ?
	`, query.ShipmentID()).Row()

	err := row.Scan(
		&response.ShipmentID,
		&response.Buyer,
		&response.Carrier,
		&response.TotalAmount,
		&response.ReleasedAmount,
		&milestones[0],
		&milestones[1],
		&milestones[2],
		&milestones[3],
		&response.Deadline,
		&response.Active,
		&response.Completed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetEscrowDetailsQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"escrow", query.ShipmentID(), err)
	}
	if err != nil {
		return GetEscrowDetailsQueryResponse{}, err
	}

	response.Milestones = milestones[:]
	response.RemainingAmount = response.TotalAmount - response.ReleasedAmount

	return response, nil
}

package queries

import (
	"errors"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrGetEscrowDetailsQueryIsNotConstructed = errors.New(
	"GetEscrowDetailsQuery must be created via NewGetEscrowDetailsQuery constructor",
)

// GetEscrowDetailsQuery retrieves the escrow attached to one shipment.
type GetEscrowDetailsQuery struct {
	shipmentID uint64

	guard guard.ConstructorGuard
}

// NewGetEscrowDetailsQuery creates a query for the given shipment.
func NewGetEscrowDetailsQuery(shipmentID uint64) (GetEscrowDetailsQuery, error) {
	if shipmentID == 0 {
		return GetEscrowDetailsQuery{}, errs.NewValueIsRequiredError("shipmentID")
	}

	return GetEscrowDetailsQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEscrowDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetEscrowDetailsQueryIsNotConstructed)
}

// ShipmentID returns the shipment identifier.
func (q GetEscrowDetailsQuery) ShipmentID() uint64 {
	return q.shipmentID
}

// GetEscrowDetailsQueryResponse is the escrow read model.
type GetEscrowDetailsQueryResponse struct {
	ShipmentID      uint64
	Buyer           string
	Carrier         string
	TotalAmount     int64
	ReleasedAmount  int64
	RemainingAmount int64
	Milestones      []bool
	Deadline        time.Time
	Active          bool
	Completed       bool
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries go straight to SQL and return read models shaped for their use
// case.
package queries

import (
	"errors"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment with its content references.
type GetShipmentQuery struct {
	shipmentID uint64

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for the given shipment id.
func NewGetShipmentQuery(shipmentID uint64) (GetShipmentQuery, error) {
	if shipmentID == 0 {
		return GetShipmentQuery{}, errs.NewValueIsRequiredError("shipmentID")
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment id.
func (q GetShipmentQuery) ShipmentID() uint64 {
	return q.shipmentID
}

// GetShipmentQueryResponse is the shipment read model.
type GetShipmentQueryResponse struct {
	ID          uint64
	Staff       string
	Buyer       string
	Carrier     string
	Status      string
	StatusCode  int
	CloseReason string
	ContentRefs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

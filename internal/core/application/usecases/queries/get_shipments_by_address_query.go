package queries

import (
	"errors"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrGetShipmentsByAddressQueryIsNotConstructed = errors.New(
	"GetShipmentsByAddressQuery must be created via NewGetShipmentsByAddressQuery constructor",
)

// GetShipmentsByAddressQuery retrieves all shipments an address participates
// in, as staff, carrier, or buyer.
type GetShipmentsByAddressQuery struct {
	address string

	guard guard.ConstructorGuard
}

// NewGetShipmentsByAddressQuery creates a query for the given address.
func NewGetShipmentsByAddressQuery(address string) (GetShipmentsByAddressQuery, error) {
	if address == "" {
		return GetShipmentsByAddressQuery{}, errs.NewValueIsRequiredError("address")
	}

	return GetShipmentsByAddressQuery{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsByAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsByAddressQueryIsNotConstructed)
}

// Address returns the participant address.
func (q GetShipmentsByAddressQuery) Address() string {
	return q.address
}

// GetShipmentsByAddressQueryResponse is one shipment summary.
type GetShipmentsByAddressQueryResponse struct {
	ID         uint64
	Staff      string
	Buyer      string
	Carrier    string
	Status     string
	StatusCode int
	UpdatedAt  time.Time
}

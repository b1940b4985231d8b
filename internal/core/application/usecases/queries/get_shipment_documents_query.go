package queries

import (
	"errors"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrGetShipmentDocumentsQueryIsNotConstructed = errors.New(
	"GetShipmentDocumentsQuery must be created via NewGetShipmentDocumentsQuery constructor",
)

// GetShipmentDocumentsQuery retrieves the documents attached to a shipment.
type GetShipmentDocumentsQuery struct {
	shipmentID uint64

	guard guard.ConstructorGuard
}

// NewGetShipmentDocumentsQuery creates a query for the given shipment id.
func NewGetShipmentDocumentsQuery(shipmentID uint64) (GetShipmentDocumentsQuery, error) {
	if shipmentID == 0 {
		return GetShipmentDocumentsQuery{}, errs.NewValueIsRequiredError("shipmentID")
	}

	return GetShipmentDocumentsQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentDocumentsQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment id.
func (q GetShipmentDocumentsQuery) ShipmentID() uint64 {
	return q.shipmentID
}

// GetShipmentDocumentsQueryResponse is one attached document.
type GetShipmentDocumentsQueryResponse struct {
	DocType    string
	ContentRef string
	UploadedBy string
	AttachedAt time.Time
}

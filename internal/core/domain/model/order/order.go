package order

import (
	"errors"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a purchase record registered by a buyer. It carries no state
// machine of its own: an order is informational until a shipment references
// its content, and that link lives in the external metadata behind the
// content reference rather than in a foreign key here.
//
// Orders are append-only: once created they are never modified or deleted.
type Order struct {
	id         uint64
	buyer      kernel.Address
	contentRef kernel.ContentRef
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates an Order. The identifier must be positive (identifiers are
// issued sequentially by the persistence layer), the buyer must be a valid
// address, and the content reference must be valid.
func NewOrder(id uint64, buyer kernel.Address, contentRef kernel.ContentRef, now time.Time) (*Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	if err := contentRef.Validate(); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Order{
		id:            id,
		buyer:         buyer,
		contentRef:    contentRef,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(id uint64, buyer kernel.Address, contentRef kernel.ContentRef, createdAt time.Time) (*Order, error) {
	return NewOrder(id, buyer, contentRef, createdAt)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's sequential identifier.
func (o *Order) ID() uint64 {
	return o.id
}

// Buyer returns the address that registered the order.
func (o *Order) Buyer() kernel.Address {
	return o.buyer
}

// ContentRef returns the opaque reference to the order details.
func (o *Order) ContentRef() kernel.ContentRef {
	return o.contentRef
}

// CreatedAt returns when the order was registered.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

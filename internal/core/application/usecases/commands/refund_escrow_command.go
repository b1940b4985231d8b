package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrRefundEscrowCommandIsNotConstructed = errors.New(
	"RefundEscrowCommand must be created via NewRefundEscrowCommand constructor",
)

// RefundEscrowCommand represents a request to refund the unreleased escrow
// balance to the buyer.
type RefundEscrowCommand struct { //nolint:recvcheck //using for validation
	sender     kernel.Address
	shipmentID uint64

	guard guard.ConstructorGuard
}

// NewRefundEscrowCommand creates a command to refund the shipment's escrow
// on behalf of sender.
func NewRefundEscrowCommand(sender kernel.Address, shipmentID uint64) (RefundEscrowCommand, error) {
	cmd := RefundEscrowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return RefundEscrowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundEscrowCommand) Validate() error {
	return c.guard.Validate(ErrRefundEscrowCommandIsNotConstructed)
}

// Sender returns the address requesting the refund.
func (c RefundEscrowCommand) Sender() kernel.Address {
	return c.sender
}

// ShipmentID returns the funded shipment.
func (c RefundEscrowCommand) ShipmentID() uint64 {
	return c.shipmentID
}

func (c *RefundEscrowCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *RefundEscrowCommand) setShipmentID(shipmentID uint64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentID")
	}

	c.shipmentID = shipmentID
	return nil
}

package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrDepositCommandIsNotConstructed = errors.New(
	"DepositCommand must be created via NewDepositCommand constructor",
)

// DepositCommand represents a request to add funds to an active escrow.
// The milestone schedule rescales to the new total.
type DepositCommand struct { //nolint:recvcheck //using for validation
	sender     kernel.Address
	shipmentID uint64
	amount     int64

	guard guard.ConstructorGuard
}

// NewDepositCommand creates a command to deposit amount token units into the
// shipment's escrow.
func NewDepositCommand(sender kernel.Address, shipmentID uint64, amount int64) (DepositCommand, error) {
	cmd := DepositCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setShipmentID(shipmentID),
		cmd.setAmount(amount),
	); err != nil {
		return DepositCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DepositCommand) Validate() error {
	return c.guard.Validate(ErrDepositCommandIsNotConstructed)
}

// Sender returns the address depositing.
func (c DepositCommand) Sender() kernel.Address {
	return c.sender
}

// ShipmentID returns the funded shipment.
func (c DepositCommand) ShipmentID() uint64 {
	return c.shipmentID
}

// Amount returns the deposit in token units.
func (c DepositCommand) Amount() int64 {
	return c.amount
}

func (c *DepositCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *DepositCommand) setShipmentID(shipmentID uint64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentID")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *DepositCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

package commands

import (
	"errors"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrOpenEscrowCommandIsNotConstructed = errors.New(
	"OpenEscrowCommand must be created via NewOpenEscrowCommand constructor",
)

// OpenEscrowCommand represents a request to open the escrow funding a
// shipment. Each shipment carries at most one escrow.
type OpenEscrowCommand struct { //nolint:recvcheck //using for validation
	sender     kernel.Address
	shipmentID uint64
	amount     int64
	deadline   time.Time

	guard guard.ConstructorGuard
}

// NewOpenEscrowCommand creates a command to open an escrow of amount token
// units for the shipment. A zero deadline selects the handler's default.
func NewOpenEscrowCommand(
	sender kernel.Address,
	shipmentID uint64,
	amount int64,
	deadline time.Time,
) (OpenEscrowCommand, error) {
	cmd := OpenEscrowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setShipmentID(shipmentID),
		cmd.setAmount(amount),
	); err != nil {
		return OpenEscrowCommand{}, err
	}

	cmd.deadline = deadline

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenEscrowCommand) Validate() error {
	return c.guard.Validate(ErrOpenEscrowCommandIsNotConstructed)
}

// Sender returns the address opening the escrow.
func (c OpenEscrowCommand) Sender() kernel.Address {
	return c.sender
}

// ShipmentID returns the funded shipment.
func (c OpenEscrowCommand) ShipmentID() uint64 {
	return c.shipmentID
}

// Amount returns the escrow total in token units.
func (c OpenEscrowCommand) Amount() int64 {
	return c.amount
}

// Deadline returns the requested refund deadline; zero means default.
func (c OpenEscrowCommand) Deadline() time.Time {
	return c.deadline
}

func (c *OpenEscrowCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *OpenEscrowCommand) setShipmentID(shipmentID uint64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentID")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *OpenEscrowCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

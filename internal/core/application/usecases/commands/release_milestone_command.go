package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrReleaseMilestoneCommandIsNotConstructed = errors.New(
	"ReleaseMilestoneCommand must be created via NewReleaseMilestoneCommand constructor",
)

// ReleaseMilestoneCommand represents an operator request to release a single
// escrow milestone out of band of the shipment lifecycle.
type ReleaseMilestoneCommand struct { //nolint:recvcheck //using for validation
	sender     kernel.Address
	shipmentID uint64
	milestone  int

	guard guard.ConstructorGuard
}

// NewReleaseMilestoneCommand creates a command to release the numbered
// milestone (1 through 4) of the shipment's escrow.
func NewReleaseMilestoneCommand(sender kernel.Address, shipmentID uint64, milestone int) (ReleaseMilestoneCommand, error) {
	cmd := ReleaseMilestoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setShipmentID(shipmentID),
		cmd.setMilestone(milestone),
	); err != nil {
		return ReleaseMilestoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrReleaseMilestoneCommandIsNotConstructed)
}

// Sender returns the operator address.
func (c ReleaseMilestoneCommand) Sender() kernel.Address {
	return c.sender
}

// ShipmentID returns the funded shipment.
func (c ReleaseMilestoneCommand) ShipmentID() uint64 {
	return c.shipmentID
}

// Milestone returns the milestone number, 1 through 4.
func (c ReleaseMilestoneCommand) Milestone() int {
	return c.milestone
}

func (c *ReleaseMilestoneCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *ReleaseMilestoneCommand) setShipmentID(shipmentID uint64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentID")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ReleaseMilestoneCommand) setMilestone(milestone int) error {
	if milestone < 1 || milestone > escrow.MilestoneCount {
		return errs.NewValueIsInvalidError("milestone")
	}

	c.milestone = milestone
	return nil
}

package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrUpdateMilestoneCommandIsNotConstructed = errors.New(
	"UpdateMilestoneCommand must be created via NewUpdateMilestoneCommand constructor",
)

// UpdateMilestoneCommand represents a request to move a shipment to a new
// lifecycle status. Reason is required only for Canceled and Failed.
type UpdateMilestoneCommand struct { //nolint:recvcheck //using for validation
	sender     kernel.Address
	shipmentID uint64
	target     shipment.Status
	reason     string

	guard guard.ConstructorGuard
}

// NewUpdateMilestoneCommand creates a command to move the shipment to target
// on behalf of sender. Created is a birth status and not a valid target.
func NewUpdateMilestoneCommand(
	sender kernel.Address,
	shipmentID uint64,
	target shipment.Status,
	reason string,
) (UpdateMilestoneCommand, error) {
	cmd := UpdateMilestoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setShipmentID(shipmentID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateMilestoneCommand{}, err
	}

	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMilestoneCommandIsNotConstructed)
}

// Sender returns the address requesting the transition.
func (c UpdateMilestoneCommand) Sender() kernel.Address {
	return c.sender
}

// ShipmentID returns the target shipment.
func (c UpdateMilestoneCommand) ShipmentID() uint64 {
	return c.shipmentID
}

// Target returns the requested status.
func (c UpdateMilestoneCommand) Target() shipment.Status {
	return c.target
}

// Reason returns the close reason for terminating transitions.
func (c UpdateMilestoneCommand) Reason() string {
	return c.reason
}

func (c *UpdateMilestoneCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *UpdateMilestoneCommand) setShipmentID(shipmentID uint64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentID")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateMilestoneCommand) setTarget(target shipment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == shipment.StatusCreated {
		return errs.NewValueIsInvalidError("target")
	}

	c.target = target
	return nil
}

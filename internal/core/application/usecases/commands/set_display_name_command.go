package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrSetDisplayNameCommandIsNotConstructed = errors.New(
	"SetDisplayNameCommand must be created via NewSetDisplayNameCommand constructor",
)

// SetDisplayNameCommand represents a request to change an account's display
// name. Accounts may rename themselves; Admin may rename anyone.
type SetDisplayNameCommand struct { //nolint:recvcheck //using for validation
	sender      kernel.Address
	account     kernel.Address
	displayName string

	guard guard.ConstructorGuard
}

// NewSetDisplayNameCommand creates a command to set account's display name
// on behalf of sender. The name must not be empty; length limits are
// enforced by the account aggregate.
func NewSetDisplayNameCommand(sender, account kernel.Address, displayName string) (SetDisplayNameCommand, error) {
	cmd := SetDisplayNameCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setAccount(account),
		cmd.setDisplayName(displayName),
	); err != nil {
		return SetDisplayNameCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDisplayNameCommand) Validate() error {
	return c.guard.Validate(ErrSetDisplayNameCommandIsNotConstructed)
}

// Sender returns the address performing the change.
func (c SetDisplayNameCommand) Sender() kernel.Address {
	return c.sender
}

// Account returns the address being renamed.
func (c SetDisplayNameCommand) Account() kernel.Address {
	return c.account
}

// DisplayName returns the new display name.
func (c SetDisplayNameCommand) DisplayName() string {
	return c.displayName
}

func (c *SetDisplayNameCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *SetDisplayNameCommand) setAccount(account kernel.Address) error {
	if err := account.Validate(); err != nil {
		return err
	}

	c.account = account
	return nil
}

func (c *SetDisplayNameCommand) setDisplayName(displayName string) error {
	if displayName == "" {
		return errs.NewValueIsRequiredError("displayName")
	}

	c.displayName = displayName
	return nil
}

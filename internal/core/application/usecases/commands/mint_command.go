package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrMintCommandIsNotConstructed = errors.New(
	"MintCommand must be created via NewMintCommand constructor",
)

// MintCommand represents an operator request to credit new tokens to an
// address.
type MintCommand struct { //nolint:recvcheck //using for validation
	sender kernel.Address
	to     kernel.Address
	amount int64

	guard guard.ConstructorGuard
}

// NewMintCommand creates a command to mint amount token units to the
// recipient on behalf of sender.
func NewMintCommand(sender, to kernel.Address, amount int64) (MintCommand, error) {
	cmd := MintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setTo(to),
		cmd.setAmount(amount),
	); err != nil {
		return MintCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MintCommand) Validate() error {
	return c.guard.Validate(ErrMintCommandIsNotConstructed)
}

// Sender returns the operator address.
func (c MintCommand) Sender() kernel.Address {
	return c.sender
}

// To returns the recipient address.
func (c MintCommand) To() kernel.Address {
	return c.to
}

// Amount returns the minted amount in token units.
func (c MintCommand) Amount() int64 {
	return c.amount
}

func (c *MintCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *MintCommand) setTo(to kernel.Address) error {
	if err := to.Validate(); err != nil {
		return err
	}

	c.to = to
	return nil
}

func (c *MintCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

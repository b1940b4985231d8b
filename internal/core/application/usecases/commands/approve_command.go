package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrApproveCommandIsNotConstructed = errors.New(
	"ApproveCommand must be created via NewApproveCommand constructor",
)

// ApproveCommand represents a token holder's request to let a spender pull
// tokens from their balance. Buyers approve the escrow vault before funding
// an escrow.
type ApproveCommand struct { //nolint:recvcheck //using for validation
	sender  kernel.Address
	spender kernel.Address
	amount  int64

	guard guard.ConstructorGuard
}

// NewApproveCommand creates a command setting the sender's allowance for the
// spender. A zero amount revokes a previous allowance.
func NewApproveCommand(sender, spender kernel.Address, amount int64) (ApproveCommand, error) {
	cmd := ApproveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setSpender(spender),
		cmd.setAmount(amount),
	); err != nil {
		return ApproveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCommand) Validate() error {
	return c.guard.Validate(ErrApproveCommandIsNotConstructed)
}

// Sender returns the token holder granting the allowance.
func (c ApproveCommand) Sender() kernel.Address {
	return c.sender
}

// Spender returns the address allowed to pull tokens.
func (c ApproveCommand) Spender() kernel.Address {
	return c.spender
}

// Amount returns the allowance in token units.
func (c ApproveCommand) Amount() int64 {
	return c.amount
}

func (c *ApproveCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *ApproveCommand) setSpender(spender kernel.Address) error {
	if err := spender.Validate(); err != nil {
		return err
	}

	c.spender = spender
	return nil
}

func (c *ApproveCommand) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

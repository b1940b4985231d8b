package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrGrantRoleCommandIsNotConstructed = errors.New(
	"GrantRoleCommand must be created via NewGrantRoleCommand constructor",
)

// GrantRoleCommand represents a request to grant a role to an account.
// The target account is created on first grant if it does not exist yet.
type GrantRoleCommand struct { //nolint:recvcheck //using for validation
	sender  kernel.Address
	account kernel.Address
	role    access.Role

	guard guard.ConstructorGuard
}

// NewGrantRoleCommand creates a command to grant role to account on behalf
// of sender. Validates that both addresses and the role are well formed.
func NewGrantRoleCommand(sender, account kernel.Address, role access.Role) (GrantRoleCommand, error) {
	cmd := GrantRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setAccount(account),
		cmd.setRole(role),
	); err != nil {
		return GrantRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GrantRoleCommand) Validate() error {
	return c.guard.Validate(ErrGrantRoleCommandIsNotConstructed)
}

// Sender returns the address performing the grant.
func (c GrantRoleCommand) Sender() kernel.Address {
	return c.sender
}

// Account returns the address receiving the role.
func (c GrantRoleCommand) Account() kernel.Address {
	return c.account
}

// Role returns the role being granted.
func (c GrantRoleCommand) Role() access.Role {
	return c.role
}

func (c *GrantRoleCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *GrantRoleCommand) setAccount(account kernel.Address) error {
	if err := account.Validate(); err != nil {
		return err
	}

	c.account = account
	return nil
}

func (c *GrantRoleCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

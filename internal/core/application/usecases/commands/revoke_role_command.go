package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrRevokeRoleCommandIsNotConstructed = errors.New(
	"RevokeRoleCommand must be created via NewRevokeRoleCommand constructor",
)

// RevokeRoleCommand represents a request to revoke a role from an account.
type RevokeRoleCommand struct { //nolint:recvcheck //using for validation
	sender  kernel.Address
	account kernel.Address
	role    access.Role

	guard guard.ConstructorGuard
}

// NewRevokeRoleCommand creates a command to revoke role from account on
// behalf of sender.
func NewRevokeRoleCommand(sender, account kernel.Address, role access.Role) (RevokeRoleCommand, error) {
	cmd := RevokeRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setAccount(account),
		cmd.setRole(role),
	); err != nil {
		return RevokeRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RevokeRoleCommand) Validate() error {
	return c.guard.Validate(ErrRevokeRoleCommandIsNotConstructed)
}

// Sender returns the address performing the revocation.
func (c RevokeRoleCommand) Sender() kernel.Address {
	return c.sender
}

// Account returns the address losing the role.
func (c RevokeRoleCommand) Account() kernel.Address {
	return c.account
}

// Role returns the role being revoked.
func (c RevokeRoleCommand) Role() access.Role {
	return c.role
}

func (c *RevokeRoleCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *RevokeRoleCommand) setAccount(account kernel.Address) error {
	if err := account.Validate(); err != nil {
		return err
	}

	c.account = account
	return nil
}

func (c *RevokeRoleCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

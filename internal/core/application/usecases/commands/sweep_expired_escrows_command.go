package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrSweepExpiredEscrowsCommandIsNotConstructed = errors.New(
	"SweepExpiredEscrowsCommand must be created via NewSweepExpiredEscrowsCommand constructor",
)

// SweepExpiredEscrowsCommand triggers a refund pass over active escrows
// whose refund deadline has passed. Issued by the background job, not by
// callers, so it carries no sender.
type SweepExpiredEscrowsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepExpiredEscrowsCommand creates a command to sweep expired escrows.
func NewSweepExpiredEscrowsCommand() SweepExpiredEscrowsCommand {
	return SweepExpiredEscrowsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepExpiredEscrowsCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredEscrowsCommandIsNotConstructed)
}

package commands

import (
	"context"
)

// ApproveCommandHandler handles allowance grants on the token ledger.
// Approving needs no role: any token holder may authorize a spender, and
// holders are not required to be registered accounts.
type ApproveCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewApproveCommandHandler creates a handler for allowance grants.
func NewApproveCommandHandler(uowFactory LedgerUoWFactory) ApproveCommandHandler {
	return ApproveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approve command.
func (h ApproveCommandHandler) Handle(ctx context.Context, cmd ApproveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TokenLedger().Approve(ctx, cmd.Sender(), cmd.Spender(), cmd.Amount()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

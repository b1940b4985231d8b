package commands

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
)

// MintCommandHandler handles token minting. Admin only.
type MintCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewMintCommandHandler creates a handler for token minting.
func NewMintCommandHandler(uowFactory LedgerUoWFactory) MintCommandHandler {
	return MintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mint command.
func (h MintCommandHandler) Handle(ctx context.Context, cmd MintCommand) error {
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

	caller, err := loadCaller(ctx, uow.AccountRepository(), cmd.Sender(), "mint tokens")
	if err != nil {
		return err
	}

	if err = services.NewTransitionAuthorizer().AuthorizeAdmin(caller, "mint tokens"); err != nil {
		return err
	}

	if err = uow.TokenLedger().Mint(ctx, cmd.To(), cmd.Amount()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

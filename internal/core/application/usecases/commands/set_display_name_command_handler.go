package commands

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
)

// SetDisplayNameCommandHandler handles display name changes.
type SetDisplayNameCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSetDisplayNameCommandHandler creates a handler for display name changes.
func NewSetDisplayNameCommandHandler(uowFactory AccountUoWFactory) SetDisplayNameCommandHandler {
	return SetDisplayNameCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the display name change.
// Returns an ObjectNotFoundError when the target account does not exist.
func (h SetDisplayNameCommandHandler) Handle(ctx context.Context, cmd SetDisplayNameCommand) error {
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

	accountRepo := uow.AccountRepository()

	caller, err := loadCaller(ctx, accountRepo, cmd.Sender(), "set display name")
	if err != nil {
		return err
	}

	if err = services.NewTransitionAuthorizer().AuthorizeSetDisplayName(caller, cmd.Account()); err != nil {
		return err
	}

	target := caller
	if !cmd.Account().IsEqual(cmd.Sender()) {
		target, err = accountRepo.Get(ctx, cmd.Account())
		if err != nil {
			return err
		}
	}

	if err = target.SetDisplayName(cmd.DisplayName()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
)

// RevokeRoleCommandHandler handles the business logic for role revocations.
// Only Admin callers may revoke roles. Revoking a role the account does not
// hold is a no-op and emits no event.
type RevokeRoleCommandHandler struct {
	uowFactory AccountUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
}

// NewRevokeRoleCommandHandler creates a handler for role revocation operations.
func NewRevokeRoleCommandHandler(
	uowFactory AccountUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
) RevokeRoleCommandHandler {
	return RevokeRoleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the role revocation command.
// Returns an ObjectNotFoundError when the target account does not exist.
func (h RevokeRoleCommandHandler) Handle(ctx context.Context, cmd RevokeRoleCommand) error {
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

	caller, err := loadCaller(ctx, accountRepo, cmd.Sender(), "revoke role")
	if err != nil {
		return err
	}

	if err = services.NewTransitionAuthorizer().AuthorizeRoleManagement(caller, "revoke role"); err != nil {
		return err
	}

	target, err := accountRepo.Get(ctx, cmd.Account())
	if err != nil {
		return err
	}

	changed, err := target.Revoke(cmd.Role())
	if err != nil {
		return err
	}

	if changed {
		if err = accountRepo.Update(ctx, target); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if changed {
		h.publisher.Publish(ctx, events.NewRoleRevoked(
			cmd.Role().String(),
			cmd.Account().String(),
			cmd.Sender().String(),
			h.clock(),
		))
	}

	return nil
}

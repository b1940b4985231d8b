package commands

import (
	"context"
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// GrantRoleCommandHandler handles the business logic for role grants.
// Only Admin callers may grant roles. Granting a role an account already
// holds is a no-op and emits no event.
type GrantRoleCommandHandler struct {
	uowFactory AccountUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
}

// NewGrantRoleCommandHandler creates a handler for role grant operations.
func NewGrantRoleCommandHandler(
	uowFactory AccountUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
) GrantRoleCommandHandler {
	return GrantRoleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the role grant command.
// Creates the target account on its first grant. The grant is persisted
// atomically; the audit event is published only after commit.
func (h GrantRoleCommandHandler) Handle(ctx context.Context, cmd GrantRoleCommand) error {
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

	caller, err := loadCaller(ctx, accountRepo, cmd.Sender(), "grant role")
	if err != nil {
		return err
	}

	if err = services.NewTransitionAuthorizer().AuthorizeRoleManagement(caller, "grant role"); err != nil {
		return err
	}

	target, err := accountRepo.Get(ctx, cmd.Account())
	created := false
	if errors.Is(err, errs.ErrObjectNotFound) {
		target, err = access.NewAccount(cmd.Account())
		created = true
	}
	if err != nil {
		return err
	}

	changed, err := target.Grant(cmd.Role())
	if err != nil {
		return err
	}

	switch {
	case created:
		err = accountRepo.Add(ctx, target)
	case changed:
		err = accountRepo.Update(ctx, target)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if changed {
		h.publisher.Publish(ctx, events.NewRoleGranted(
			cmd.Role().String(),
			cmd.Account().String(),
			cmd.Sender().String(),
			h.clock(),
		))
	}

	return nil
}

package commands

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// DepositCommandHandler handles escrow top-ups.
// Only the escrow's buyer (or Admin) may deposit; funds are pulled from the
// buyer's balance against the allowance the buyer granted the vault.
type DepositCommandHandler struct {
	uowFactory EscrowUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
	vault      kernel.Address
}

// NewDepositCommandHandler creates a handler for escrow deposits.
func NewDepositCommandHandler(
	uowFactory EscrowUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
	vault kernel.Address,
) DepositCommandHandler {
	return DepositCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		vault:      vault,
	}
}

// Handle processes the deposit command.
func (h DepositCommandHandler) Handle(ctx context.Context, cmd DepositCommand) error {
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

	caller, err := loadCaller(ctx, uow.AccountRepository(), cmd.Sender(), "deposit")
	if err != nil {
		return err
	}

	escrowRepo := uow.EscrowRepository()

	esc, err := escrowRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !caller.HasRole(access.RoleAdmin) && !esc.Buyer().IsEqual(cmd.Sender()) {
		return errs.NewAuthorizationError("deposit", cmd.Sender().String())
	}

	if err = esc.Deposit(cmd.Amount()); err != nil {
		return err
	}

	if err = uow.TokenLedger().TransferFrom(ctx, h.vault, esc.Buyer(), h.vault, cmd.Amount()); err != nil {
		return err
	}

	if err = escrowRepo.Update(ctx, esc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.NewDepositAdded(cmd.ShipmentID(), cmd.Amount(), h.clock()))

	return nil
}

package commands

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// RefundEscrowCommandHandler handles buyer-initiated refunds.
// Before the refund deadline a refund requires the shipment to be canceled
// or failed and no milestone released; past the deadline the unreleased
// balance is refundable unconditionally.
type RefundEscrowCommandHandler struct {
	uowFactory EscrowUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
	vault      kernel.Address
}

// NewRefundEscrowCommandHandler creates a handler for escrow refunds.
func NewRefundEscrowCommandHandler(
	uowFactory EscrowUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
	vault kernel.Address,
) RefundEscrowCommandHandler {
	return RefundEscrowCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		vault:      vault,
	}
}

// Handle processes the refund command.
func (h RefundEscrowCommandHandler) Handle(ctx context.Context, cmd RefundEscrowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caller, err := loadCaller(ctx, uow.AccountRepository(), cmd.Sender(), "refund escrow")
	if err != nil {
		return err
	}

	escrowRepo := uow.EscrowRepository()

	esc, err := escrowRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !caller.HasRole(access.RoleAdmin) && !esc.Buyer().IsEqual(cmd.Sender()) {
		return errs.NewAuthorizationError("refund escrow", cmd.Sender().String())
	}

	shp, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	refunded, err := esc.Refund(now, shp.Status().IsAbsorbing())
	if err != nil {
		return err
	}

	if refunded > 0 {
		if err = uow.TokenLedger().Transfer(ctx, h.vault, esc.Buyer(), refunded); err != nil {
			return err
		}
	}

	if err = escrowRepo.Update(ctx, esc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.NewEscrowRefunded(cmd.ShipmentID(), esc.Buyer().String(), refunded, now))

	return nil
}

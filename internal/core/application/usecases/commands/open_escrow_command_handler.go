package commands

import (
	"context"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// OpenEscrowCommandHandler handles escrow opening.
// Only the shipment's buyer (or Admin) may open; funds are pulled from the
// buyer's balance against the allowance the buyer granted the vault. The
// escrow must exist before the shipment moves in transit, so opening is
// refused from InTransit onwards.
type OpenEscrowCommandHandler struct {
	uowFactory EscrowUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
	vault      kernel.Address
	escrowTTL  time.Duration
}

// NewOpenEscrowCommandHandler creates a handler for escrow opening.
func NewOpenEscrowCommandHandler(
	uowFactory EscrowUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
	vault kernel.Address,
	escrowTTL time.Duration,
) OpenEscrowCommandHandler {
	return OpenEscrowCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		vault:      vault,
		escrowTTL:  escrowTTL,
	}
}

// Handle processes the escrow opening command.
// Returns a DuplicateError when the shipment already has an escrow and an
// InsufficientFundsError when the buyer's balance does not cover the amount.
func (h OpenEscrowCommandHandler) Handle(ctx context.Context, cmd OpenEscrowCommand) error {
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

	caller, err := loadCaller(ctx, uow.AccountRepository(), cmd.Sender(), "open escrow")
	if err != nil {
		return err
	}

	shp, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !caller.HasRole(access.RoleAdmin) && !shp.Buyer().IsEqual(cmd.Sender()) {
		return errs.NewAuthorizationError("open escrow", cmd.Sender().String())
	}

	if shp.Status() != shipment.StatusCreated && shp.Status() != shipment.StatusPickedUp {
		return errs.NewStateError("open escrow", "shipment is already in transit")
	}

	escrowRepo := uow.EscrowRepository()

	exists, err := escrowRepo.Exists(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewDuplicateError("escrow", cmd.ShipmentID())
	}

	deadline := cmd.Deadline()
	if deadline.IsZero() {
		deadline = now.Add(h.escrowTTL)
	}

	esc, err := escrow.NewEscrow(cmd.ShipmentID(), shp.Buyer(), cmd.Amount(), deadline, now)
	if err != nil {
		return err
	}

	if shp.HasCarrier() {
		if err = esc.BindCarrier(shp.Carrier()); err != nil {
			return err
		}
	}

	if err = uow.TokenLedger().TransferFrom(ctx, h.vault, shp.Buyer(), h.vault, cmd.Amount()); err != nil {
		return err
	}

	if err = escrowRepo.Add(ctx, esc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.NewEscrowOpened(
		cmd.ShipmentID(),
		shp.Buyer().String(),
		esc.Carrier().String(),
		cmd.Amount(),
		deadline,
		now,
	))

	return nil
}

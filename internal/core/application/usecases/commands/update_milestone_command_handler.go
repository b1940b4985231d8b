package commands

import (
	"context"
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// UpdateMilestoneCommandHandler orchestrates shipment lifecycle transitions.
// A transition, its escrow milestone release and the ledger transfer are one
// transaction: either all of them apply or none.
//
// Escrow side effects per target status:
//   - Delivered releases every milestone still unreleased, paying the escrow
//     out to 100%. PickedUp, InTransit and Arrived never move funds; mid-path
//     payouts happen only through the explicit release operation.
//   - InTransit additionally binds the acting carrier to the shipment and
//     escrow, and refuses to start transit against an inactive escrow.
//   - Canceled and Failed refund the unreleased balance to the buyer.
type UpdateMilestoneCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
	vault      kernel.Address
	payout     kernel.Address
}

// NewUpdateMilestoneCommandHandler creates a handler for lifecycle
// transitions. Vault holds escrowed funds; payout receives milestone
// releases.
func NewUpdateMilestoneCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
	vault, payout kernel.Address,
) UpdateMilestoneCommandHandler {
	return UpdateMilestoneCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		vault:      vault,
		payout:     payout,
	}
}

// Handle processes the transition command.
func (h UpdateMilestoneCommandHandler) Handle(ctx context.Context, cmd UpdateMilestoneCommand) error { //nolint:funlen,gocognit //transaction script
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

	caller, err := loadCaller(ctx, uow.AccountRepository(), cmd.Sender(), "update milestone")
	if err != nil {
		return err
	}

	if err = services.NewTransitionAuthorizer().AuthorizeTransition(caller, cmd.Target()); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()

	shp, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	escrowRepo := uow.EscrowRepository()

	esc, err := escrowRepo.Get(ctx, cmd.ShipmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		esc = nil
	} else if err != nil {
		return err
	}

	if cmd.Target() == shipment.StatusInTransit {
		if esc != nil && !esc.IsActive() {
			return errs.NewStateError("start transit", "escrow is not active")
		}
		if err = h.bindCarrier(shp, esc, cmd.Sender()); err != nil {
			return err
		}
	}

	oldStatus := shp.Status()

	if err = shp.TransitionTo(cmd.Target(), cmd.Reason(), now); err != nil {
		return err
	}

	pending := []events.Event{
		events.NewMilestoneUpdated(shp.ID(), oldStatus.String(), shp.Status().String(), cmd.Reason(), now),
	}

	escrowTouched := cmd.Target() == shipment.StatusInTransit && esc != nil

	if esc != nil && esc.IsActive() {
		switch {
		case cmd.Target().IsAbsorbing():
			var refunded int64
			refunded, err = esc.Refund(now, true)
			if err != nil {
				return err
			}
			if refunded > 0 {
				if err = uow.TokenLedger().Transfer(ctx, h.vault, esc.Buyer(), refunded); err != nil {
					return err
				}
			}
			pending = append(pending, events.NewEscrowRefunded(shp.ID(), esc.Buyer().String(), refunded, now))
			escrowTouched = true

		case cmd.Target() == shipment.StatusDelivered:
			for _, milestone := range esc.UnreleasedMilestones() {
				var released int64
				released, err = esc.Release(milestone, now)
				if err != nil {
					return err
				}
				if released > 0 {
					if err = uow.TokenLedger().Transfer(ctx, h.vault, h.payout, released); err != nil {
						return err
					}
					pending = append(pending,
						events.NewFundsReleased(shp.ID(), milestone, h.payout.String(), released, now))
				}
			}
			escrowTouched = true
		}
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}

	if escrowTouched {
		if err = escrowRepo.Update(ctx, esc); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range pending {
		h.publisher.Publish(ctx, event)
	}

	return nil
}

// bindCarrier records the acting carrier on the shipment and escrow the
// first time the shipment moves in transit.
func (h UpdateMilestoneCommandHandler) bindCarrier(
	shp *shipment.Shipment,
	esc *escrow.Escrow,
	carrier kernel.Address,
) error {
	if !shp.HasCarrier() {
		if err := shp.BindCarrier(carrier); err != nil {
			return err
		}
	}
	if esc != nil && esc.Carrier().IsZero() {
		if err := esc.BindCarrier(carrier); err != nil {
			return err
		}
	}

	return nil
}

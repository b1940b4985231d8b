package commands

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
)

// ReleaseMilestoneCommandHandler handles manual milestone releases.
// Admin only; the shipment lifecycle releases milestones on its own, this
// command covers operator intervention.
type ReleaseMilestoneCommandHandler struct {
	uowFactory EscrowUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
	vault      kernel.Address
	payout     kernel.Address
}

// NewReleaseMilestoneCommandHandler creates a handler for manual milestone
// releases.
func NewReleaseMilestoneCommandHandler(
	uowFactory EscrowUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
	vault, payout kernel.Address,
) ReleaseMilestoneCommandHandler {
	return ReleaseMilestoneCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		vault:      vault,
		payout:     payout,
	}
}

// Handle processes the manual release command.
// Returns a DuplicateError when the milestone was already released and a
// DeadlineError when the refund deadline has passed.
func (h ReleaseMilestoneCommandHandler) Handle(ctx context.Context, cmd ReleaseMilestoneCommand) error {
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

	caller, err := loadCaller(ctx, uow.AccountRepository(), cmd.Sender(), "release milestone")
	if err != nil {
		return err
	}

	if err = services.NewTransitionAuthorizer().AuthorizeAdmin(caller, "release milestone"); err != nil {
		return err
	}

	escrowRepo := uow.EscrowRepository()

	esc, err := escrowRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	released, err := esc.Release(cmd.Milestone(), now)
	if err != nil {
		return err
	}

	if released > 0 {
		if err = uow.TokenLedger().Transfer(ctx, h.vault, h.payout, released); err != nil {
			return err
		}
	}

	if err = escrowRepo.Update(ctx, esc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if released > 0 {
		h.publisher.Publish(ctx, events.NewFundsReleased(
			cmd.ShipmentID(), cmd.Milestone(), h.payout.String(), released, now,
		))
	}

	return nil
}

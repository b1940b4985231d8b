package commands

import (
	"context"
	"log/slog"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
)

// SweepExpiredEscrowsCommandHandler refunds every active escrow whose
// deadline has passed. Escrows that refuse the refund are logged and
// skipped so one bad record cannot stall the sweep.
type SweepExpiredEscrowsCommandHandler struct {
	uowFactory SweepUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
	vault      kernel.Address
	logger     *slog.Logger
}

// NewSweepExpiredEscrowsCommandHandler creates a handler for the expired
// escrow sweep.
func NewSweepExpiredEscrowsCommandHandler(
	uowFactory SweepUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
	vault kernel.Address,
	logger *slog.Logger,
) SweepExpiredEscrowsCommandHandler {
	return SweepExpiredEscrowsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		vault:      vault,
		logger:     logger,
	}
}

// Handle processes the sweep and returns the number of escrows refunded.
func (h SweepExpiredEscrowsCommandHandler) Handle(ctx context.Context, cmd SweepExpiredEscrowsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	escrowRepo := uow.EscrowRepository()

	expired, err := escrowRepo.GetAllActiveExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	swept := 0
	pending := make([]events.Event, 0, len(expired))

	for _, esc := range expired {
		refunded, refundErr := esc.Refund(now, false)
		if refundErr != nil {
			h.logger.Warn("skipping escrow refund",
				"shipment_id", esc.ShipmentID(),
				"error", refundErr,
			)
			continue
		}

		if refunded > 0 {
			if err = uow.TokenLedger().Transfer(ctx, h.vault, esc.Buyer(), refunded); err != nil {
				return 0, err
			}
		}

		if err = escrowRepo.Update(ctx, esc); err != nil {
			return 0, err
		}

		pending = append(pending, events.NewEscrowRefunded(esc.ShipmentID(), esc.Buyer().String(), refunded, now))
		swept++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, event := range pending {
		h.publisher.Publish(ctx, event)
	}

	return swept, nil
}

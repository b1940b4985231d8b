package commands

import (
	"context"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. When the command carries a positive fee, it opens the
// escrow and pulls the funds from the buyer's balance against the vault's
// allowance, atomically with the shipment insert.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
	vault      kernel.Address
	escrowTTL  time.Duration
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Vault is the ledger address that holds escrowed funds; escrowTTL is the
// default refund deadline offset for commands that do not set one.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
	vault kernel.Address,
	escrowTTL time.Duration,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		vault:      vault,
		escrowTTL:  escrowTTL,
	}
}

// Handle processes the shipment registration command and returns the new
// shipment id. The caller must hold the Staff role (or Admin). The buyer is
// bound by address reference only; no account or Buyer role is required to
// exist at registration time.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (uint64, error) {
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

	accountRepo := uow.AccountRepository()

	caller, err := loadCaller(ctx, accountRepo, cmd.Sender(), "create shipment")
	if err != nil {
		return 0, err
	}

	if err = services.NewTransitionAuthorizer().AuthorizeCreate(caller); err != nil {
		return 0, err
	}

	shipmentRepo := uow.ShipmentRepository()

	id, err := shipmentRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	shp, err := shipment.NewShipment(id, cmd.Sender(), cmd.Buyer(), cmd.ContentRef(), now)
	if err != nil {
		return 0, err
	}

	for _, doc := range cmd.Documents() {
		if _, err = shp.AttachDocument(doc.DocType, doc.ContentRef, cmd.Sender(), now); err != nil {
			return 0, err
		}
	}

	if err = shipmentRepo.Add(ctx, shp); err != nil {
		return 0, err
	}

	var esc *escrow.Escrow
	if cmd.Fee() > 0 {
		deadline := cmd.Deadline()
		if deadline.IsZero() {
			deadline = now.Add(h.escrowTTL)
		}

		esc, err = escrow.NewEscrow(id, cmd.Buyer(), cmd.Fee(), deadline, now)
		if err != nil {
			return 0, err
		}

		if err = uow.TokenLedger().TransferFrom(ctx, h.vault, cmd.Buyer(), h.vault, cmd.Fee()); err != nil {
			return 0, err
		}

		if err = uow.EscrowRepository().Add(ctx, esc); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.publisher.Publish(ctx, events.NewShipmentCreated(id, cmd.Sender().String(), cmd.Buyer().String(), now))
	if esc != nil {
		h.publisher.Publish(ctx, events.NewEscrowOpened(
			id, cmd.Buyer().String(), "", esc.TotalAmount(), esc.Deadline(), now,
		))
	}

	return id, nil
}

package commands

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
)

// AttachDocumentCommandHandler handles document attachment.
// Any shipment participant or Admin may attach; documents are append-only.
type AttachDocumentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
}

// NewAttachDocumentCommandHandler creates a handler for document attachment.
func NewAttachDocumentCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
) AttachDocumentCommandHandler {
	return AttachDocumentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the document attachment command.
func (h AttachDocumentCommandHandler) Handle(ctx context.Context, cmd AttachDocumentCommand) error {
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

	caller, err := loadCaller(ctx, uow.AccountRepository(), cmd.Sender(), "attach document")
	if err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()

	shp, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = services.NewTransitionAuthorizer().AuthorizeAttachDocument(caller, shp); err != nil {
		return err
	}

	if _, err = shp.AttachDocument(cmd.DocType(), cmd.ContentRef(), cmd.Sender(), now); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.NewDocumentAttached(
		cmd.ShipmentID(),
		cmd.DocType(),
		cmd.ContentRef().String(),
		cmd.Sender().String(),
		now,
	))

	return nil
}

package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrAttachDocumentCommandIsNotConstructed = errors.New(
	"AttachDocumentCommand must be created via NewAttachDocumentCommand constructor",
)

// AttachDocumentCommand represents a request to attach a document reference
// to a shipment's audit trail.
type AttachDocumentCommand struct { //nolint:recvcheck //using for validation
	sender     kernel.Address
	shipmentID uint64
	docType    string
	contentRef kernel.ContentRef

	guard guard.ConstructorGuard
}

// NewAttachDocumentCommand creates a command to attach a document of docType
// to the shipment on behalf of sender.
func NewAttachDocumentCommand(
	sender kernel.Address,
	shipmentID uint64,
	docType string,
	contentRef kernel.ContentRef,
) (AttachDocumentCommand, error) {
	cmd := AttachDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setShipmentID(shipmentID),
		cmd.setDocType(docType),
		cmd.setContentRef(contentRef),
	); err != nil {
		return AttachDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachDocumentCommandIsNotConstructed)
}

// Sender returns the address attaching the document.
func (c AttachDocumentCommand) Sender() kernel.Address {
	return c.sender
}

// ShipmentID returns the target shipment.
func (c AttachDocumentCommand) ShipmentID() uint64 {
	return c.shipmentID
}

// DocType returns the document classification.
func (c AttachDocumentCommand) DocType() string {
	return c.docType
}

// ContentRef returns the document content reference.
func (c AttachDocumentCommand) ContentRef() kernel.ContentRef {
	return c.contentRef
}

func (c *AttachDocumentCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *AttachDocumentCommand) setShipmentID(shipmentID uint64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentID")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AttachDocumentCommand) setDocType(docType string) error {
	if docType == "" {
		return errs.NewValueIsRequiredError("docType")
	}

	c.docType = docType
	return nil
}

func (c *AttachDocumentCommand) setContentRef(contentRef kernel.ContentRef) error {
	if err := contentRef.Validate(); err != nil {
		return err
	}

	c.contentRef = contentRef
	return nil
}

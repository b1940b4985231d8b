package commands

import (
	"errors"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// InitialDocument describes a document attached at registration time. The
// uploader and timestamp are filled in by the handler from the command's
// sender and the engine clock.
type InitialDocument struct {
	DocType    string
	ContentRef kernel.ContentRef
}

// CreateShipmentCommand represents a request by staff to register a new
// shipment for a buyer. A positive fee opens an escrow funded from the
// buyer's token balance in the same transaction.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	sender     kernel.Address
	buyer      kernel.Address
	contentRef kernel.ContentRef
	documents  []InitialDocument
	fee        int64
	deadline   time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
// Fee must be non-negative; zero means no escrow. A zero deadline selects
// the handler's default refund deadline. Documents may be empty.
func NewCreateShipmentCommand(
	sender, buyer kernel.Address,
	contentRef kernel.ContentRef,
	documents []InitialDocument,
	fee int64,
	deadline time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setBuyer(buyer),
		cmd.setContentRef(contentRef),
		cmd.setDocuments(documents),
		cmd.setFee(fee),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.deadline = deadline

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Sender returns the staff address registering the shipment.
func (c CreateShipmentCommand) Sender() kernel.Address {
	return c.sender
}

// Buyer returns the buyer the shipment is for.
func (c CreateShipmentCommand) Buyer() kernel.Address {
	return c.buyer
}

// ContentRef returns the shipment manifest reference.
func (c CreateShipmentCommand) ContentRef() kernel.ContentRef {
	return c.contentRef
}

// Documents returns the documents to attach at registration time.
func (c CreateShipmentCommand) Documents() []InitialDocument {
	return c.documents
}

// Fee returns the escrow amount in token units; zero means no escrow.
func (c CreateShipmentCommand) Fee() int64 {
	return c.fee
}

// Deadline returns the requested refund deadline; zero means default.
func (c CreateShipmentCommand) Deadline() time.Time {
	return c.deadline
}

func (c *CreateShipmentCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *CreateShipmentCommand) setBuyer(buyer kernel.Address) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *CreateShipmentCommand) setContentRef(contentRef kernel.ContentRef) error {
	if err := contentRef.Validate(); err != nil {
		return err
	}

	c.contentRef = contentRef
	return nil
}

func (c *CreateShipmentCommand) setDocuments(documents []InitialDocument) error {
	for _, doc := range documents {
		if doc.DocType == "" {
			return errs.NewValueIsRequiredError("docType")
		}
		if err := doc.ContentRef.Validate(); err != nil {
			return err
		}
	}

	c.documents = documents
	return nil
}

func (c *CreateShipmentCommand) setFee(fee int64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidError("fee")
	}

	c.fee = fee
	return nil
}

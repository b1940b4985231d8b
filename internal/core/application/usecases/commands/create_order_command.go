package commands

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request by a buyer to place a purchase
// order. The content reference points at the off-system order manifest.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	sender     kernel.Address
	contentRef kernel.ContentRef

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order on behalf of
// sender, who becomes the order's buyer.
func NewCreateOrderCommand(sender kernel.Address, contentRef kernel.ContentRef) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setContentRef(contentRef),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Sender returns the buyer placing the order.
func (c CreateOrderCommand) Sender() kernel.Address {
	return c.sender
}

// ContentRef returns the order manifest reference.
func (c CreateOrderCommand) ContentRef() kernel.ContentRef {
	return c.contentRef
}

func (c *CreateOrderCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *CreateOrderCommand) setContentRef(contentRef kernel.ContentRef) error {
	if err := contentRef.Validate(); err != nil {
		return err
	}

	c.contentRef = contentRef
	return nil
}

package commands

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/order"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Orders receive sequential identifiers issued by the repository.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order placement command and returns the new order id.
// The caller must hold the Buyer role (or Admin).
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	caller, err := loadCaller(ctx, accountRepo, cmd.Sender(), "place order")
	if err != nil {
		return 0, err
	}

	if err = services.NewTransitionAuthorizer().AuthorizePlaceOrder(caller); err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()

	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(id, cmd.Sender(), cmd.ContentRef(), h.clock())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}

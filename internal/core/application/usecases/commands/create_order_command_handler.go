package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places new orders. Products are resolved and the
// order with its line items is written inside one transaction, so an unknown
// product leaves nothing behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(customerID, items)
//
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrInvalidProduct) {
//	    return badRequest(err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates a Pending order with a freshly generated order number and
// returns it after commit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := resolveLineItems(ctx, uow.ProductCatalog(), cmd.Items())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(), cmd.CustomerID(), items, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

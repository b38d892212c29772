package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler swaps the line items of a Pending order for a new set
// and recomputes its total.
//
// The prior items and total stay untouched when a product does not resolve, when
// the order is no longer Pending, or when the write fails.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order as stored after the replacement.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = current.Status().ValidateEdit(); err != nil {
		return nil, err
	}

	items, err := resolveLineItems(ctx, uow.ProductCatalog(), cmd.Items())
	if err != nil {
		return nil, err
	}

	// The repository re-checks the status under a row lock.
	updated, err := orderRepo.ReplaceItems(ctx, cmd.OrderID(), items)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

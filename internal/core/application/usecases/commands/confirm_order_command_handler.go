package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler moves an order from Pending to Confirmed and stores
// its shipping address in the same write.
//
// Example:
//
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidStateTransition):
//	    // already confirmed
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case err != nil:
//	    // storage failure
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reads the order under a row lock, so a concurrent edit either commits
// before the read or waits until the confirmation commits. The returned order is
// the one stored. The write is still conditional on the order being Pending, and
// losing a race to another confirmer surfaces as order.ErrInvalidStateTransition.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
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

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	address := cmd.ShippingAddress()
	if err = o.Confirm(address); err != nil {
		return nil, err
	}

	updated, err := orderRepo.UpdateStatus(ctx, o.ID(), order.Pending, order.Confirmed, &address)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: order %s is no longer Pending", order.ErrInvalidStateTransition, o.Number())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// GetOrderQueryHandler returns one order with its line items, or an
// *errs.ObjectNotFoundError when there is no match.
type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if id, ok := query.ID(); ok {
		return h.orders.Get(ctx, id)
	}

	number, _ := query.Number()
	return h.orders.GetByNumber(ctx, number)
}

package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// SearchOrdersQueryHandler finds orders by order number, customer name or
// customer email, newest first.
//
// Example:
//
//	query, _ := NewSearchOrdersQuery("smith")
//	orders, err := handler.Handle(ctx, query)
type SearchOrdersQueryHandler struct {
	orders OrderReader
}

func NewSearchOrdersQueryHandler(orders OrderReader) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{orders: orders}
}

func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.Search(ctx, query.Text())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}

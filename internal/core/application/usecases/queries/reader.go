// Package queries contains read-only operations over orders.
// Implements the Query pattern for the read side of the CQRS architecture:
// queries never begin a transaction and never mutate state.
package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderReader is the read subset of ports.OrderRepository used by query handlers.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)
	Search(ctx context.Context, text string) ([]*order.Order, error)
	ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}

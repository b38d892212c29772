// Package ports defines the contracts between the order lifecycle core and its
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their line items.
//
// Implementations return *errs.ObjectNotFoundError for missing orders and
// *errs.PersistenceFailureError for storage faults.
type OrderRepository interface {
	// Add persists a new order together with its line items in one transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// ReplaceItems deletes every line item of the order and inserts items in their
	// place, recomputing the stored total. The order row is locked for the duration
	// and must still be Pending, otherwise order.ErrInvalidStateTransition is returned
	// and nothing changes.
	ReplaceItems(ctx context.Context, id kernel.UUID, items []order.LineItem) (*order.Order, error)

	// UpdateStatus moves the order from one status to another, optionally setting the
	// shipping address in the same write. It is a single conditional update: false
	// (without an error) means the order does not exist or is not in status from.
	UpdateStatus(
		ctx context.Context,
		id kernel.UUID,
		from, to order.Status,
		address *order.ShippingAddress,
	) (bool, error)

	// Get retrieves an order with its line items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get and locks its row until the
	// surrounding transaction ends. Writers that take the same lock (ReplaceItems,
	// UpdateStatus) wait for it, so the returned order stays current until commit.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order with its line items by order number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// Search returns orders whose number, customer name or customer email contains
	// text, case-insensitively and literally. Empty text matches every order.
	// Results are ordered newest first.
	Search(ctx context.Context, text string) ([]*order.Order, error)

	// ListByIDs returns the orders that exist among ids, in no particular order.
	ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}

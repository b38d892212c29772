package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderByIDQuery or NewGetOrderByNumberQuery constructor",
	)
)

// GetOrderQuery looks up a single order either by its identifier or by its
// order number. Exactly one of the two is set.
//
// Example:
//
//	query, err := NewGetOrderByNumberQuery("ORD-01J9Z3J4T6X5Q8W7E2R1Y0U9I8")
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	id     kernel.UUID
	number order.Number
	byID   bool

	guard guard.ConstructorGuard
}

func NewGetOrderByIDQuery(id kernel.UUID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: id, byID: true, guard: guard.NewConstructorGuard()}, nil
}

func NewGetOrderByNumberQuery(number string) (GetOrderQuery, error) {
	n, err := order.NumberFromString(number)
	if err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{number: n, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ID returns the identifier and true when the query looks up by id.
func (q GetOrderQuery) ID() (kernel.UUID, bool) {
	return q.id, q.byID
}

// Number returns the order number and true when the query looks up by number.
func (q GetOrderQuery) Number() (order.Number, bool) {
	return q.number, !q.byID
}

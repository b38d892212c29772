package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering domain. It owns its line items
// exclusively and keeps the cached total in step with them.
//
// Order follows these invariants:
//   - id, number, customer and creation time never change after construction
//   - there is at least one line item
//   - total equals the sum of line item subtotals
//   - status only moves Pending -> Confirmed
type Order struct {
	id              kernel.UUID
	number          Number
	customerID      kernel.UUID
	status          Status
	shippingAddress *ShippingAddress
	items           []LineItem
	total           kernel.Money
	createdAt       time.Time
	isConstructed   bool
}

// NewOrder creates a Pending order for customerID from the given line items and
// computes its total.
//
// Example:
//
//	item, _ := order.NewLineItem(kernel.NewUUID(), product, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(), customerID,
//	    []order.LineItem{item}, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	items []LineItem,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. The stored total must match
// the stored line items; a mismatch means the row set is corrupt.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	status Status,
	shippingAddress *ShippingAddress,
	items []LineItem,
	total kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setShippingAddress(shippingAddress),
		o.setItems(items),
		o.setCreatedAt(createdAt),
		total.Validate(),
	); err != nil {
		return nil, err
	}

	if !o.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total amount is invalid",
			fmt.Errorf("stored %s, line items sum to %s", total, o.total),
		)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns nil until the order is confirmed with an address.
func (o *Order) ShippingAddress() *ShippingAddress {
	return o.shippingAddress
}

// Items returns a copy of the line items in their original order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) TotalAmount() kernel.Money {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ReplaceItems discards all line items and installs the given set, recomputing
// the total. Only Pending orders can be edited.
func (o *Order) ReplaceItems(items []LineItem) error {
	if err := o.status.ValidateEdit(); err != nil {
		return err
	}
	return o.setItems(items)
}

// Confirm captures the shipping address and moves the order to Confirmed.
// A non-Pending order is rejected with ErrInvalidStateTransition and left untouched.
func (o *Order) Confirm(address ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}

	next, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = next
	o.shippingAddress = &address
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setShippingAddress(address *ShippingAddress) error {
	if address == nil {
		o.shippingAddress = nil
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	copied := *address
	o.shippingAddress = &copied
	return nil
}

// setItems installs items and recomputes the total in one step, so the two can
// never be observed out of step.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Subtotal())
	}

	o.items = slices.Clone(items)
	o.total = total
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

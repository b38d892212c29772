package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
)

// ConfirmOrderCommand closes a Pending order and records where it ships.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(orderID, "123 Main Street, Springfield")
//	if err != nil {
//	    return err // address missing or out of bounds
//	}
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	shippingAddress order.ShippingAddress

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand validates the order id and the shipping address.
// The address is trimmed and must be within the shipping address bounds.
func NewConfirmOrderCommand(orderID kernel.UUID, shippingAddress string) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmOrderCommand) ShippingAddress() order.ShippingAddress {
	return c.shippingAddress
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setShippingAddress(value string) error {
	address, err := order.NewShippingAddress(value)
	if err != nil {
		return err
	}

	c.shippingAddress = address
	return nil
}

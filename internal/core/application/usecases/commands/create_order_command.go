package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer's request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []ItemRequest{
//	    {ProductID: p1, Quantity: 2},
//	    {ProductID: p2, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	items      []ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the customer id, that there is at least one item,
// and that every quantity is within bounds.
func NewCreateOrderCommand(customerID kernel.UUID, items []ItemRequest) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Items() []ItemRequest {
	return slices.Clone(c.items)
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if err := validateItemRequests(items); err != nil {
		return err
	}

	c.items = slices.Clone(items)
	return nil
}

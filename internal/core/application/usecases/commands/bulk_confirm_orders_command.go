package commands

import (
	"errors"
	"fmt"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrBulkConfirmOrdersCommandIsNotConstructed = errors.New(
		"BulkConfirmOrdersCommand must be created via NewBulkConfirmOrdersCommand constructor",
	)
)

// BulkConfirmOrdersCommand is an administrative sweep confirming many orders at
// once. Duplicate ids are collapsed, keeping first-seen order.
type BulkConfirmOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewBulkConfirmOrdersCommand(orderIDs []kernel.UUID) (BulkConfirmOrdersCommand, error) {
	cmd := BulkConfirmOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderIDs(orderIDs); err != nil {
		return BulkConfirmOrdersCommand{}, err
	}

	return cmd, nil
}

func (c BulkConfirmOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkConfirmOrdersCommandIsNotConstructed)
}

func (c BulkConfirmOrdersCommand) OrderIDs() []kernel.UUID {
	return slices.Clone(c.orderIDs)
}

func (c *BulkConfirmOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("order ids")
	}

	unique := make([]kernel.UUID, 0, len(orderIDs))
	for i, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return fmt.Errorf("order id %d: %w", i, err)
		}
		if !slices.ContainsFunc(unique, id.IsEqual) {
			unique = append(unique, id)
		}
	}

	c.orderIDs = unique
	return nil
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// ErrInvalidProduct is returned when a requested product does not exist in the catalog.
var ErrInvalidProduct = errors.New("invalid product")

// ItemRequest is one requested product/quantity pair of a create or update.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

func validateItemRequests(items []ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var result error
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			result = errors.Join(result, fmt.Errorf("item %d: %w", i, err))
		}
		if item.Quantity < order.MinQuantity || item.Quantity > order.MaxQuantity {
			result = errors.Join(result, fmt.Errorf("item %d: %w", i,
				errs.NewValueIsOutOfRangeError("quantity", item.Quantity, order.MinQuantity, order.MaxQuantity)))
		}
	}
	return result
}

// resolveLineItems turns requests into line items, snapshotting product number
// and unit price from the catalog. The first unknown product aborts with
// ErrInvalidProduct.
func resolveLineItems(ctx context.Context, products ports.ProductCatalog, items []ItemRequest) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		product, err := products.Resolve(ctx, item.ProductID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidProduct, item.ProductID)
		}
		if err != nil {
			return nil, err
		}

		lineItem, err := order.NewLineItem(kernel.NewUUID(), product, item.Quantity)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, lineItem)
	}
	return lineItems, nil
}

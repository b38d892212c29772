package ports

import (
	"context"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
)

// ProductCatalog is the read-only view of the product catalog.
type ProductCatalog interface {
	// Resolve returns the product with the given id, or *errs.ObjectNotFoundError
	// when there is none.
	Resolve(ctx context.Context, id kernel.UUID) (catalog.Product, error)
}

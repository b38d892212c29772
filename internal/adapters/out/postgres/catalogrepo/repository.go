package catalogrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductCatalog implements ports.ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a catalog reader on db. Pass a transaction to
// read inside it.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Resolve returns the product with the given id.
func (c *GormProductCatalog) Resolve(ctx context.Context, id kernel.UUID) (catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return catalog.Product{}, err
	}

	var dto ProductDTO
	err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.Product{}, errs.NewObjectNotFoundError("product", id.String())
	}
	if err != nil {
		return catalog.Product{}, errs.NewPersistenceFailureErrorWithCause("resolve product", err)
	}

	product, err := toDomain(dto)
	if err != nil {
		return catalog.Product{}, errs.NewPersistenceFailureErrorWithCause("restore product", err)
	}
	return product, nil
}

// Package catalogrepo provides read-only access to the product catalog.
// Products are managed elsewhere; this package only maps stored rows to
// catalog.Product values.
package catalogrepo

import (
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Product{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return catalog.Product{}, err
	}

	return catalog.NewProduct(id, dto.ProductNumber, price)
}

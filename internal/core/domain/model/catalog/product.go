// Package catalog holds the read-only view of catalog products that the order
// lifecycle snapshots into line items.
package catalog

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry as seen at lookup time: identity, external product
// code and current unit price.
type Product struct {
	id        kernel.UUID
	number    string
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct validates and builds a catalog entry.
func NewProduct(id kernel.UUID, number string, unitPrice kernel.Money) (Product, error) {
	p := Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setNumber(number),
		p.setUnitPrice(unitPrice),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) ID() kernel.UUID {
	return p.id
}

// Number returns the external product code.
func (p Product) Number() string {
	return p.number
}

func (p Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("product number")
	}
	p.number = number
	return nil
}

func (p *Product) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.unitPrice = price
	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	MinQuantity = 1
	MaxQuantity = 999
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// LineItem is one product/quantity entry of an order. Product number and unit
// price are copies taken from the catalog when the line was created, so later
// catalog changes do not rewrite order history. Subtotal is always derived.
type LineItem struct {
	id            kernel.UUID
	productID     kernel.UUID
	productNumber string
	quantity      int
	unitPrice     kernel.Money
	subtotal      kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem snapshots product into a new line of the given quantity.
//
// Example:
//
//	product, _ := catalog.NewProduct(productID, "P-001", kernel.MustMoney("100.00"))
//	item, err := order.NewLineItem(kernel.NewUUID(), product, 2)
//	// item.Subtotal() == 200.00
func NewLineItem(id kernel.UUID, product catalog.Product, quantity int) (LineItem, error) {
	if err := product.Validate(); err != nil {
		return LineItem{}, err
	}

	item := LineItem{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		item.setID(id),
		item.setProduct(product.ID(), product.Number()),
		item.setQuantity(quantity),
		item.setUnitPrice(product.UnitPrice()),
	); err != nil {
		return LineItem{}, err
	}

	item.subtotal = item.unitPrice.Mul(item.quantity)
	return item, nil
}

// RestoreLineItem rebuilds a persisted line and checks the stored subtotal
// against quantity * unitPrice.
func RestoreLineItem(
	id, productID kernel.UUID,
	productNumber string,
	quantity int,
	unitPrice, subtotal kernel.Money,
) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		item.setID(id),
		item.setProduct(productID, productNumber),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		subtotal.Validate(),
	); err != nil {
		return LineItem{}, err
	}

	item.subtotal = item.unitPrice.Mul(item.quantity)
	if !item.subtotal.IsEqual(subtotal) {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"subtotal is invalid",
			fmt.Errorf("%s != %d * %s", subtotal, item.quantity, item.unitPrice),
		)
	}

	return item, nil
}

func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) ID() kernel.UUID {
	return i.id
}

func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductNumber returns the product code captured when the line was created.
func (i LineItem) ProductNumber() string {
	return i.productNumber
}

func (i LineItem) Quantity() int {
	return i.quantity
}

func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i LineItem) Subtotal() kernel.Money {
	return i.subtotal
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setProduct(productID kernel.UUID, productNumber string) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	productNumber = strings.TrimSpace(productNumber)
	if productNumber == "" {
		return errs.NewValueIsRequiredError("product number")
	}
	i.productID = productID
	i.productNumber = productNumber
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

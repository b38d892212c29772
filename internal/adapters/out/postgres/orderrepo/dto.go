// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and cascade with the order.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber     string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          int16           `gorm:"type:smallint;not null;index"`
	ShippingAddress *string         `gorm:"type:text"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	LineItems       []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one persisted order line. Position keeps the order in
// which the caller listed the items.
type LineItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position      int             `gorm:"type:int;not null"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductNumber string          `gorm:"type:varchar(50);not null"`
	Quantity      int             `gorm:"type:int;not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming convention to use "order_line_items".
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// CustomerDTO is the read-only customer record that order search joins against.
// Customers are owned by the identity side of the system; this package never writes them.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts an order aggregate, line items included, to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var address *string
	if a := aggregate.ShippingAddress(); a != nil {
		value := a.String()
		address = &value
	}

	orderID := aggregate.ID().Bytes()
	return OrderDTO{
		ID:              orderID,
		OrderNumber:     aggregate.Number().String(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Status:          int16(aggregate.Status()),
		ShippingAddress: address,
		TotalAmount:     aggregate.TotalAmount().Decimal(),
		CreatedAt:       aggregate.CreatedAt(),
		LineItems:       lineItemsFromDomain(orderID, aggregate.Items()),
	}
}

func lineItemsFromDomain(orderID uuid.UUID, items []order.LineItem) []LineItemDTO {
	dtos := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, LineItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       orderID,
			Position:      i,
			ProductID:     item.ProductID().Bytes(),
			ProductNumber: item.ProductNumber(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice().Decimal(),
			Subtotal:      item.Subtotal().Decimal(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate through RestoreOrder, which re-checks the
// stored total against the stored lines. dto.LineItems must be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var address *order.ShippingAddress
	if dto.ShippingAddress != nil {
		a, addrErr := order.NewShippingAddress(*dto.ShippingAddress)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		order.Number(dto.OrderNumber),
		customerID,
		order.Status(dto.Status),
		address,
		items,
		total,
		dto.CreatedAt,
	)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(id, productID, dto.ProductNumber, dto.Quantity, unitPrice, subtotal)
}

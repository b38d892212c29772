package http

import (
	"fmt"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderItemsRequest is the body of order creation and of a full item replacement.
type OrderItemsRequest struct {
	Items []ItemRequest `json:"items"`
}

type ConfirmOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

type BulkConfirmRequest struct {
	OrderIDs []string `json:"order_ids"`
}

type BulkConfirmResponse struct {
	Confirmed int `json:"confirmed"`
}

type LineItem struct {
	ID            string `json:"id"`
	ProductID     string `json:"product_id"`
	ProductNumber string `json:"product_number"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	Subtotal      string `json:"subtotal"`
}

// Order renders money as fixed two-decimal strings so clients never see
// floating point rounding.
type Order struct {
	ID              string     `json:"id"`
	OrderNumber     string     `json:"order_number"`
	CustomerID      string     `json:"customer_id"`
	Status          string     `json:"status"`
	ShippingAddress *string    `json:"shipping_address"`
	TotalAmount     string     `json:"total_amount"`
	CreatedAt       time.Time  `json:"created_at"`
	Items           []LineItem `json:"items"`
}

type ProductSales struct {
	ProductID     string `json:"product_id"`
	ProductNumber string `json:"product_number"`
	Quantity      int64  `json:"quantity"`
	Revenue       string `json:"revenue"`
}

type OrderStats struct {
	TotalOrders      int64          `json:"total_orders"`
	PendingOrders    int64          `json:"pending_orders"`
	ConfirmedOrders  int64          `json:"confirmed_orders"`
	ConfirmedRevenue string         `json:"confirmed_revenue"`
	TopProducts      []ProductSales `json:"top_products"`
}

func parseUUID(name, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func toItemRequests(items []ItemRequest) ([]commands.ItemRequest, error) {
	result := make([]commands.ItemRequest, 0, len(items))
	for i, item := range items {
		productID, err := parseUUID(fmt.Sprintf("item %d product_id", i), item.ProductID)
		if err != nil {
			return nil, err
		}
		result = append(result, commands.ItemRequest{ProductID: productID, Quantity: item.Quantity})
	}
	return result, nil
}

func toOrderIDs(ids []string) ([]kernel.UUID, error) {
	result := make([]kernel.UUID, 0, len(ids))
	for i, raw := range ids {
		id, err := parseUUID(fmt.Sprintf("order_ids[%d]", i), raw)
		if err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, nil
}

func toOrder(o *order.Order) Order {
	var address *string
	if a := o.ShippingAddress(); a != nil {
		value := a.String()
		address = &value
	}

	items := o.Items()
	lines := make([]LineItem, len(items))
	for i, item := range items {
		lines[i] = LineItem{
			ID:            item.ID().String(),
			ProductID:     item.ProductID().String(),
			ProductNumber: item.ProductNumber(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice().String(),
			Subtotal:      item.Subtotal().String(),
		}
	}

	return Order{
		ID:              o.ID().String(),
		OrderNumber:     o.Number().String(),
		CustomerID:      o.CustomerID().String(),
		Status:          o.Status().String(),
		ShippingAddress: address,
		TotalAmount:     o.TotalAmount().String(),
		CreatedAt:       o.CreatedAt(),
		Items:           lines,
	}
}

func toOrders(orders []*order.Order) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

func toStats(stats queries.GetOrderStatsQueryResponse) OrderStats {
	top := make([]ProductSales, len(stats.TopProducts))
	for i, p := range stats.TopProducts {
		top[i] = ProductSales{
			ProductID:     p.ProductID.String(),
			ProductNumber: p.ProductNumber,
			Quantity:      p.Quantity,
			Revenue:       p.Revenue.String(),
		}
	}

	return OrderStats{
		TotalOrders:      stats.TotalOrders,
		PendingOrders:    stats.PendingOrders,
		ConfirmedOrders:  stats.ConfirmedOrders,
		ConfirmedRevenue: stats.ConfirmedRevenue.String(),
		TopProducts:      top,
	}
}

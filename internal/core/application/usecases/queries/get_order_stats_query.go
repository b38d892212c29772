package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

// TopProductsLimit is how many best-selling products the stats report lists.
const TopProductsLimit = 5

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery produces the admin dashboard figures.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse summarizes all orders. Revenue counts Confirmed
// orders only.
type GetOrderStatsQueryResponse struct {
	TotalOrders      int64
	PendingOrders    int64
	ConfirmedOrders  int64
	ConfirmedRevenue kernel.Money
	TopProducts      []ProductSales
}

// ProductSales is the confirmed volume of one product, highest quantity first.
type ProductSales struct {
	ProductID     kernel.UUID
	ProductNumber string
	Quantity      int64
	Revenue       kernel.Money
}

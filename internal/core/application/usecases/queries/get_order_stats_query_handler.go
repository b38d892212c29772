package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates order counts and revenue straight from
// the database.
//
// Example:
//
//	handler := NewGetOrderStatsQueryHandler(db)
//	stats, err := handler.Handle(ctx, NewGetOrderStatsQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d pending, %s confirmed revenue\n", stats.PendingOrders, stats.ConfirmedRevenue)
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	var (
		resp    GetOrderStatsQueryResponse
		revenue decimal.Decimal
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(total_amount) FILTER (WHERE status = ?), 0)
		FROM orders
	`, int(order.Pending), int(order.Confirmed), int(order.Confirmed)).Row()
	if err := row.Scan(&resp.TotalOrders, &resp.PendingOrders, &resp.ConfirmedOrders, &revenue); err != nil {
		return GetOrderStatsQueryResponse{}, errs.NewPersistenceFailureErrorWithCause("count orders", err)
	}

	confirmedRevenue, err := kernel.NewMoney(revenue)
	if err != nil {
		return GetOrderStatsQueryResponse{}, errs.NewPersistenceFailureErrorWithCause("read confirmed revenue", err)
	}
	resp.ConfirmedRevenue = confirmedRevenue

	topProducts, err := h.topProducts(ctx)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	resp.TopProducts = topProducts

	return resp, nil
}

func (h GetOrderStatsQueryHandler) topProducts(ctx context.Context) ([]ProductSales, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.product_id,
			MAX(li.product_number),
			SUM(li.quantity),
			SUM(li.subtotal)
		FROM order_line_items li
		JOIN orders o ON o.id = li.order_id
		WHERE o.status = ?
		GROUP BY li.product_id
		ORDER BY SUM(li.quantity) DESC, MAX(li.product_number)
		LIMIT ?
	`, int(order.Confirmed), TopProductsLimit).Rows()
	if err != nil {
		return nil, errs.NewPersistenceFailureErrorWithCause("query top products", err)
	}
	defer rows.Close()

	result := make([]ProductSales, 0, TopProductsLimit)
	for rows.Next() {
		var (
			sales     ProductSales
			productID uuid.UUID
			revenue   decimal.Decimal
		)

		if err = rows.Scan(&productID, &sales.ProductNumber, &sales.Quantity, &revenue); err != nil {
			return nil, errs.NewPersistenceFailureErrorWithCause("scan top products", err)
		}

		sales.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, errs.NewPersistenceFailureErrorWithCause("scan top products", err)
		}
		sales.Revenue, err = kernel.NewMoney(revenue)
		if err != nil {
			return nil, errs.NewPersistenceFailureErrorWithCause("scan top products", err)
		}
		result = append(result, sales)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceFailureErrorWithCause("read top products", err)
	}

	return result, nil
}

package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper neutralizes LIKE metacharacters so search text is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Every statement runs on the *gorm.DB it was created with, so a repository
// obtained from a unit of work shares that unit's transaction.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its line items. GORM writes both tables in one
// transaction (a savepoint when db is already a transaction).
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceFailureErrorWithCause("add order", err)
	}

	return nil
}

// ReplaceItems locks the order row, re-checks that it is still editable, then
// deletes every line and inserts the new set together with the new total.
func (r *GormOrderRepository) ReplaceItems(
	ctx context.Context,
	id kernel.UUID,
	items []order.LineItem,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var (
		updated   *order.Order
		domainErr error
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderDTO
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("LineItems", byPosition).
			First(&dto, "id = ?", id.Bytes()).Error
		if err != nil {
			return err
		}

		current, err := restore(dto)
		if err != nil {
			domainErr = err
			return err
		}

		if err = current.ReplaceItems(items); err != nil {
			domainErr = err
			return err
		}

		if err = tx.Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
			return err
		}

		lines := lineItemsFromDomain(dto.ID, current.Items())
		if err = tx.Create(&lines).Error; err != nil {
			return err
		}

		err = tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Update("total_amount", current.TotalAmount().Decimal()).Error
		if err != nil {
			return err
		}

		updated = current
		return nil
	})

	switch {
	case domainErr != nil:
		return nil, domainErr
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errs.NewObjectNotFoundError("order", id.String())
	case err != nil:
		return nil, errs.NewPersistenceFailureErrorWithCause("replace order items", err)
	}

	return updated, nil
}

// UpdateStatus is a single conditional UPDATE. It reports false when the row is
// missing or its status is not from.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	from, to order.Status,
	address *order.ShippingAddress,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if !from.CanTransitionTo(to) {
		return false, fmt.Errorf("%w: %s -> %s", order.ErrInvalidStateTransition, from, to)
	}

	updates := map[string]any{"status": int16(to)}
	if address != nil {
		if err := address.Validate(); err != nil {
			return false, err
		}
		updates["shipping_address"] = address.String()
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int16(from)).
		Updates(updates)
	if result.Error != nil {
		return false, errs.NewPersistenceFailureErrorWithCause("update order status", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(r.db.WithContext(ctx), "order", id.String(), "id = ?", id.Bytes())
}

// GetForUpdate is Get under SELECT ... FOR UPDATE.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.first(query, "order", id.String(), "id = ?", id.Bytes())
}

// GetByNumber retrieves an order with its line items by order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	return r.first(r.db.WithContext(ctx), "order number", number.String(), "order_number = ?", number.String())
}

// Search matches text against the order number, the customer's first name,
// last name, full name and email. The text is bound as a parameter with LIKE
// metacharacters escaped.
func (r *GormOrderRepository) Search(ctx context.Context, text string) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("LineItems", byPosition).
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id")

	if text = strings.TrimSpace(text); text != "" {
		pattern := "%" + likeEscaper.Replace(text) + "%"
		query = query.Where(`
			orders.order_number ILIKE @pattern ESCAPE '\'
			OR customers.first_name ILIKE @pattern ESCAPE '\'
			OR customers.last_name ILIKE @pattern ESCAPE '\'
			OR (customers.first_name || ' ' || customers.last_name) ILIKE @pattern ESCAPE '\'
			OR customers.email ILIKE @pattern ESCAPE '\'`,
			map[string]any{"pattern": pattern},
		)
	}

	return r.find("search orders", query.Order("orders.created_at DESC, orders.order_number DESC"))
}

// ListByIDs returns the orders that exist among ids.
func (r *GormOrderRepository) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	if len(ids) == 0 {
		return make([]*order.Order, 0), nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	query := r.db.WithContext(ctx).
		Preload("LineItems", byPosition).
		Where("id IN ?", raw)

	return r.find("list orders by id", query)
}

// ListByCustomer returns a customer's orders, newest first.
func (r *GormOrderRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Preload("LineItems", byPosition).
		Where("customer_id = ?", customerID.Bytes()).
		Order("created_at DESC, order_number DESC")

	return r.find("list customer orders", query)
}

func (r *GormOrderRepository) first(
	query *gorm.DB,
	paramName, lookup string,
	cond string, arg any,
) (*order.Order, error) {
	var dto OrderDTO
	err := query.Preload("LineItems", byPosition).First(&dto, cond, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError(paramName, lookup)
	}
	if err != nil {
		return nil, errs.NewPersistenceFailureErrorWithCause("get order", err)
	}

	return restore(dto)
}

func (r *GormOrderRepository) find(operation string, query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceFailureErrorWithCause(operation, err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := restore(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// restore maps a stored row to the aggregate. Rows that fail domain validation
// are reported as a persistence failure: the store holds data the domain cannot accept.
func restore(dto OrderDTO) (*order.Order, error) {
	o, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewPersistenceFailureErrorWithCause("restore order "+dto.OrderNumber, err)
	}
	return o, nil
}

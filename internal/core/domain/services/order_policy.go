package services

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// Role distinguishes ordinary customers from administrators.
type Role int

const (
	RoleCustomer Role = iota
	RoleAdmin
)

// Actor is the already-authenticated caller of an operation.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

// NewCustomer returns an actor acting on their own orders.
func NewCustomer(id kernel.UUID) Actor {
	return Actor{ID: id, Role: RoleCustomer}
}

// NewAdmin returns an actor with administrative rights.
func NewAdmin(id kernel.UUID) Actor {
	return Actor{ID: id, Role: RoleAdmin}
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// OrderPolicy answers authorization questions about orders.
//
// Rules:
//   - view: the owning customer or any admin
//   - update and confirm: the owning customer, and only while the order is Pending
//   - administer (search all, bulk confirm, stats): admins only
//
// Example:
//
//	policy := services.NewOrderPolicy()
//	if !policy.CanConfirm(actor, o) {
//	    return ErrForbidden
//	}
type OrderPolicy struct{}

func NewOrderPolicy() OrderPolicy {
	return OrderPolicy{}
}

// CanView reports whether actor may read o.
func (OrderPolicy) CanView(actor Actor, o *order.Order) bool {
	if o.Validate() != nil {
		return false
	}
	return actor.IsAdmin() || isOwner(actor, o)
}

// CanUpdate reports whether actor may replace the line items of o.
func (OrderPolicy) CanUpdate(actor Actor, o *order.Order) bool {
	return o.Validate() == nil && isOwner(actor, o) && o.Status() == order.Pending
}

// CanConfirm reports whether actor may confirm o.
func (OrderPolicy) CanConfirm(actor Actor, o *order.Order) bool {
	return o.Validate() == nil && isOwner(actor, o) && o.Status() == order.Pending
}

// CanAdminister is the single gate for operations spanning every customer's orders.
func (OrderPolicy) CanAdminister(actor Actor) bool {
	return actor.IsAdmin()
}

func isOwner(actor Actor, o *order.Order) bool {
	return actor.ID.Validate() == nil && actor.ID.IsEqual(o.CustomerID())
}

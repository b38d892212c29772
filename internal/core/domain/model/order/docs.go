// Package order provides the Order aggregate of the ordering system: an order
// number, the owning customer, a two-state lifecycle, an optional shipping address
// and the line items whose subtotals make up the cached total.
//
// The package includes:
//   - Order: the aggregate root, created only through NewOrder or RestoreOrder
//   - LineItem: a product/quantity entry with a price snapshot taken at creation time
//   - Status: the Pending -> Confirmed state machine
//   - Number: the human-facing order number
//   - ShippingAddress: the bounded address captured at confirmation
//
// Key business rules:
//   - An order always has at least one line item
//   - Total amount equals the sum of line item subtotals after every mutation
//   - Subtotal equals quantity times unit price for every line item
//   - Line items can be replaced only while the order is Pending
//   - Confirmed is terminal; confirming twice fails with ErrInvalidStateTransition
package order

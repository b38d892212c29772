// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier for orders, line items, products and customers
//   - Money: non-negative monetary amount with cent precision
//
// Both are immutable and their zero values are rejected by Validate, so an
// aggregate can tell a missing identifier or price apart from a real one.
package kernel

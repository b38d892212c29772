// Package services provides domain services that apply business rules spanning
// more than a single aggregate.
//
// The package includes:
//   - OrderPolicy: authorization predicates deciding which actor may view, edit,
//     confirm or administer orders
//
// Policies are pure functions of their inputs: they never load data and never
// mutate the aggregates they inspect. Identity is taken as given by the caller.
package services

// Package order provides domain entities and business logic for order
// management in the fulfillment system. It implements the Order aggregate
// root with its items and lifecycle status vocabulary.
//
// The package includes:
//   - Order: The aggregate root holding identity, items, total price and status
//   - Item: An immutable value object for a single purchasable position
//   - Status: The closed seven-value lifecycle vocabulary with a failure predicate
//
// Key business rules:
//   - Orders must have a caller-supplied external identifier and non-negative prices
//   - Status is declarative: no transition graph is enforced, any valid status
//     may replace any other
//   - IsFailed holds exactly for Cancelled, Rejected and Failed
//   - Statuses reported by delivery providers are coerced into the vocabulary,
//     degrading to Processing when missing or unrecognized
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

// Package order provides domain entities and business logic for pizza order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns customer details, timestamps and
//     the ordered collection of line items
//   - Item: A line-item value object referencing a catalog pizza
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid order code, a customer name and at least one item
//   - Order status follows a strict workflow:
//     Pending -> InProgress -> Ready -> Completed
//   - Claiming records the claim timestamp exactly once; completing records
//     the pickup timestamp exactly once
//   - Completed is terminal; no transition moves an order backward
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

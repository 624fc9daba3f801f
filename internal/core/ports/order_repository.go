package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their line items; an order and its items
// are always written and read as one unit.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its line items in a
	// single atomic operation. After a successful add the order exists in
	// storage with assigned numeric keys; callers re-read through GetByCode
	// when they need the stored keys.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable lifecycle state (status, claim and
	// completion timestamps) of an existing order. Line items never change
	// after creation and are not touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByCode retrieves an order aggregate by its client-facing code.
	// Returns errs.ObjectNotFoundError when no such code exists.
	GetByCode(ctx context.Context, code kernel.OrderCode) (*order.Order, error)

	// GetByCodeForUpdate retrieves an order like GetByCode but additionally
	// acquires an exclusive lock on the order record, scoped to the current
	// transaction and held until it commits or rolls back. Two concurrent
	// callers resolving the same code serialize: the second caller blocks
	// until the first caller's transaction completes and then observes the
	// post-update state.
	//
	// Returns errs.ObjectLockedError when the storage engine refuses to
	// grant the lock within its policy, distinctly from not-found.
	GetByCodeForUpdate(ctx context.Context, code kernel.OrderCode) (*order.Order, error)

	// GetCreatedAfter retrieves all orders created strictly after the given
	// instant, ordered by creation time ascending. Used by duplicate
	// detection to scan the trailing submission window.
	GetCreatedAfter(ctx context.Context, after time.Time) ([]*order.Order, error)
}

package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/menu"
)

// PizzaRepository defines the persistence contract for the pizza catalog.
// The order core uses only Get, for read-time validation and response
// enrichment; the remaining methods serve catalog management.
type PizzaRepository interface {
	// Add persists a new catalog entry. Returns menu.PizzaAlreadyExistsError
	// when the name is already in use.
	Add(ctx context.Context, aggregate *menu.Pizza) error

	// Update persists changes to an existing catalog entry.
	Update(ctx context.Context, aggregate *menu.Pizza) error

	// Get retrieves a pizza by its id.
	// Returns errs.ObjectNotFoundError when no such pizza exists.
	Get(ctx context.Context, id int64) (*menu.Pizza, error)

	// GetAll retrieves the full catalog ordered by id.
	GetAll(ctx context.Context) ([]*menu.Pizza, error)

	// GetAllAvailable retrieves the orderable catalog ordered by id.
	GetAllAvailable(ctx context.Context) ([]*menu.Pizza, error)

	// Count returns the number of catalog entries.
	Count(ctx context.Context) (int64, error)
}

package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrGetAvailablePizzasQueryIsNotConstructed = errors.New(
	"GetAvailablePizzasQuery must be created via NewGetAvailablePizzasQuery constructor",
)

// GetAvailablePizzasQuery retrieves the orderable menu: catalog entries whose
// availability flag is on. This is what customers browse before ordering.
type GetAvailablePizzasQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailablePizzasQuery creates a query to retrieve the orderable menu.
// This is a parameterless query.
func NewGetAvailablePizzasQuery() GetAvailablePizzasQuery {
	return GetAvailablePizzasQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailablePizzasQueryIsNotConstructed if validation fails.
func (q GetAvailablePizzasQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePizzasQueryIsNotConstructed)
}

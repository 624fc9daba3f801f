package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrGetAllPizzasQueryIsNotConstructed = errors.New(
	"GetAllPizzasQuery must be created via NewGetAllPizzasQuery constructor",
)

// GetAllPizzasQuery retrieves the full catalog including entries currently
// flagged unavailable. This is the management view.
type GetAllPizzasQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPizzasQuery creates a query to retrieve the full catalog.
// This is a parameterless query.
func NewGetAllPizzasQuery() GetAllPizzasQuery {
	return GetAllPizzasQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllPizzasQueryIsNotConstructed if validation fails.
func (q GetAllPizzasQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPizzasQueryIsNotConstructed)
}

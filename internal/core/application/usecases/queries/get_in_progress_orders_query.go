package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrGetInProgressOrdersQueryIsNotConstructed = errors.New(
	"GetInProgressOrdersQuery must be created via NewGetInProgressOrdersQuery constructor",
)

// GetInProgressOrdersQuery retrieves all orders currently in preparation,
// oldest first.
type GetInProgressOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInProgressOrdersQuery creates a query to retrieve orders in preparation.
// This is a parameterless query.
func NewGetInProgressOrdersQuery() GetInProgressOrdersQuery {
	return GetInProgressOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInProgressOrdersQueryIsNotConstructed if validation fails.
func (q GetInProgressOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetInProgressOrdersQueryIsNotConstructed)
}

package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderByCodeQueryIsNotConstructed = errors.New(
	"GetOrderByCodeQuery must be created via NewGetOrderByCodeQuery constructor",
)

// GetOrderByCodeQuery retrieves a single order by its tracking code.
// This is the customer-facing tracking lookup.
//
// Example:
//
//	code, _ := kernel.OrderCodeFromString("ORD-1A2B3C4D")
//	query, _ := NewGetOrderByCodeQuery(code)
//	handler := NewGetOrderByCodeQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to look up order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", view.Code, view.StatusDescription)
type GetOrderByCodeQuery struct {
	orderCode kernel.OrderCode

	guard guard.ConstructorGuard
}

// NewGetOrderByCodeQuery creates a query to look up an order by tracking code.
// Returns an error if the order code is not a valid tracking code.
func NewGetOrderByCodeQuery(orderCode kernel.OrderCode) (GetOrderByCodeQuery, error) {
	if err := orderCode.Validate(); err != nil {
		return GetOrderByCodeQuery{}, err
	}

	return GetOrderByCodeQuery{
		orderCode: orderCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByCodeQueryIsNotConstructed if validation fails.
func (q GetOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByCodeQueryIsNotConstructed)
}

// OrderCode returns the tracking code to look up.
func (q GetOrderByCodeQuery) OrderCode() kernel.OrderCode {
	return q.orderCode
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailablePizzasQueryHandler retrieves the orderable menu from the database.
type GetAvailablePizzasQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailablePizzasQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetAvailablePizzasQueryHandler(db *gorm.DB) GetAvailablePizzasQueryHandler {
	return GetAvailablePizzasQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when nothing is orderable.
func (h GetAvailablePizzasQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePizzasQuery,
) ([]PizzaView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		pizzaViewSQL + ` WHERE available` + pizzaViewOrdering,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPizzaViews(rows)
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllPizzasQueryHandler retrieves the full catalog from the database.
type GetAllPizzasQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPizzasQueryHandler creates a handler for full catalog queries.
// Requires a GORM database connection for query execution.
func NewGetAllPizzasQueryHandler(db *gorm.DB) GetAllPizzasQueryHandler {
	return GetAllPizzasQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when the catalog is empty.
func (h GetAllPizzasQueryHandler) Handle(ctx context.Context, query GetAllPizzasQuery) ([]PizzaView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(pizzaViewSQL + pizzaViewOrdering).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPizzaViews(rows)
}

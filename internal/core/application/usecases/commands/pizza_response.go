package commands

import (
	"pizzeria/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// PizzaResponse is an immutable snapshot of a catalog entry.
type PizzaResponse struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
}

func newPizzaResponse(p *menu.Pizza) PizzaResponse {
	return PizzaResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Available:   p.Available(),
	}
}

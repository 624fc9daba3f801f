package queries

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// PizzaView is a read model of one catalog entry.
type PizzaView struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
}

const pizzaViewSQL = `
	SELECT id, name, description, price, available
	FROM pizzas
`

const pizzaViewOrdering = ` ORDER BY id`

func scanPizzaViews(rows *sql.Rows) ([]PizzaView, error) {
	views := make([]PizzaView, 0)

	for rows.Next() {
		var view PizzaView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.Price, &view.Available); err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

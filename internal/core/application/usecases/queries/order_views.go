// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain model and read projections straight from the database with raw SQL,
// returning denormalized views with catalog details already joined in.
package queries

import (
	"database/sql"
	"time"

	"pizzeria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderView is a denormalized read model of an order with its lines resolved
// against the catalog.
type OrderView struct {
	ID                int64
	Code              string
	CustomerName      string
	CustomerPhone     string
	Status            string
	StatusDescription string
	CreatedAt         time.Time
	ClaimedAt         *time.Time
	CompletedAt       *time.Time
	Items             []OrderItemView
}

// OrderItemView is one resolved line of an OrderView.
type OrderItemView struct {
	ID               int64
	PizzaID          int64
	PizzaName        string
	PizzaDescription string
	PizzaPrice       decimal.Decimal
	Quantity         int
	Notes            *string
}

// orderViewSQL selects orders joined with their lines and catalog details.
// Callers append a WHERE clause; the ORDER BY keeps queue ordering stable
// (creation time, then id as a tiebreaker) and groups each order's line rows
// together for scanning.
const orderViewSQL = `
	SELECT
		o.id, o.code, o.customer_name, o.customer_phone, o.status,
		o.created_at, o.claimed_at, o.completed_at,
		i.id, i.pizza_id, i.quantity, i.notes,
		p.name, p.description, p.price
	FROM orders o
	JOIN order_items i ON i.order_id = o.id
	JOIN pizzas p ON p.id = i.pizza_id
`

const orderViewOrdering = ` ORDER BY o.created_at, o.id, i.id`

// scanOrderViews folds the joined rows into one OrderView per order.
// Rows must arrive grouped by order id, which orderViewOrdering guarantees.
func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)

	for rows.Next() {
		var (
			view      OrderView
			item      OrderItemView
			claimedAt sql.NullTime
			completed sql.NullTime
			notes     sql.NullString
		)

		if err := rows.Scan(
			&view.ID, &view.Code, &view.CustomerName, &view.CustomerPhone, &view.Status,
			&view.CreatedAt, &claimedAt, &completed,
			&item.ID, &item.PizzaID, &item.Quantity, &notes,
			&item.PizzaName, &item.PizzaDescription, &item.PizzaPrice,
		); err != nil {
			return nil, err
		}

		if claimedAt.Valid {
			t := claimedAt.Time
			view.ClaimedAt = &t
		}
		if completed.Valid {
			t := completed.Time
			view.CompletedAt = &t
		}
		if notes.Valid {
			n := notes.String
			item.Notes = &n
		}

		status, err := order.StatusFromString(view.Status)
		if err != nil {
			return nil, err
		}
		view.StatusDescription = status.Description()

		if n := len(views); n > 0 && views[n-1].ID == view.ID {
			views[n-1].Items = append(views[n-1].Items, item)
			continue
		}

		view.Items = []OrderItemView{item}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

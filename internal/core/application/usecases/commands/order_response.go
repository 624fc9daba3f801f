package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"github.com/shopspring/decimal"
)

// OrderResponse is an immutable, fully-resolved snapshot of an order returned
// to callers. Line details (pizza name, description, price) are read live from
// the catalog at assembly time rather than copied at order time.
type OrderResponse struct {
	ID                int64
	Code              string
	CustomerName      string
	CustomerPhone     string
	Status            string
	StatusDescription string
	CreatedAt         time.Time
	ClaimedAt         *time.Time
	CompletedAt       *time.Time
	Items             []OrderItemResponse
}

// OrderItemResponse is one resolved line within an order snapshot.
type OrderItemResponse struct {
	ID               int64
	PizzaID          int64
	PizzaName        string
	PizzaDescription string
	PizzaPrice       decimal.Decimal
	Quantity         int
	Notes            *string
}

// newOrderResponse assembles the snapshot for an order, resolving each line's
// catalog details through the pizza repository bound to the current transaction.
func newOrderResponse(ctx context.Context, pizzas ports.PizzaRepository, o *order.Order) (OrderResponse, error) {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		pizza, err := pizzas.Get(ctx, item.PizzaID())
		if err != nil {
			return OrderResponse{}, err
		}

		items = append(items, OrderItemResponse{
			ID:               item.ID(),
			PizzaID:          item.PizzaID(),
			PizzaName:        pizza.Name(),
			PizzaDescription: pizza.Description(),
			PizzaPrice:       pizza.Price(),
			Quantity:         item.Quantity(),
			Notes:            item.Notes(),
		})
	}

	return OrderResponse{
		ID:                o.ID(),
		Code:              o.Code().String(),
		CustomerName:      o.CustomerName(),
		CustomerPhone:     o.CustomerPhone(),
		Status:            o.Status().String(),
		StatusDescription: o.Status().Description(),
		CreatedAt:         o.CreatedAt(),
		ClaimedAt:         o.ClaimedAt(),
		CompletedAt:       o.CompletedAt(),
		Items:             items,
	}, nil
}

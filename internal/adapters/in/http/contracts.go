package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the JSON body for placing an order.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []OrderLineRequest `json:"items"`
}

// OrderLineRequest is one requested line within CreateOrderRequest.
type OrderLineRequest struct {
	PizzaID  int64   `json:"pizzaId"`
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes,omitempty"`
}

// CreatePizzaRequest is the JSON body for adding a catalog entry.
type CreatePizzaRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// SetAvailabilityRequest is the JSON body for toggling catalog availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// OrderResponse is the JSON representation of an order snapshot.
type OrderResponse struct {
	ID                int64               `json:"id"`
	Code              string              `json:"code"`
	CustomerName      string              `json:"customerName"`
	CustomerPhone     string              `json:"customerPhone"`
	Status            string              `json:"status"`
	StatusDescription string              `json:"statusDescription"`
	CreatedAt         time.Time           `json:"createdAt"`
	ClaimedAt         *time.Time          `json:"claimedAt,omitempty"`
	CompletedAt       *time.Time          `json:"completedAt,omitempty"`
	Items             []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one resolved line within OrderResponse.
type OrderItemResponse struct {
	ID               int64           `json:"id"`
	PizzaID          int64           `json:"pizzaId"`
	PizzaName        string          `json:"pizzaName"`
	PizzaDescription string          `json:"pizzaDescription"`
	PizzaPrice       decimal.Decimal `json:"pizzaPrice"`
	Quantity         int             `json:"quantity"`
	Notes            *string         `json:"notes,omitempty"`
}

// PizzaResponse is the JSON representation of a catalog entry.
type PizzaResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func orderResponseFromCommand(resp commands.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemResponse{
			ID:               item.ID,
			PizzaID:          item.PizzaID,
			PizzaName:        item.PizzaName,
			PizzaDescription: item.PizzaDescription,
			PizzaPrice:       item.PizzaPrice,
			Quantity:         item.Quantity,
			Notes:            item.Notes,
		}
	}

	return OrderResponse{
		ID:                resp.ID,
		Code:              resp.Code,
		CustomerName:      resp.CustomerName,
		CustomerPhone:     resp.CustomerPhone,
		Status:            resp.Status,
		StatusDescription: resp.StatusDescription,
		CreatedAt:         resp.CreatedAt,
		ClaimedAt:         resp.ClaimedAt,
		CompletedAt:       resp.CompletedAt,
		Items:             items,
	}
}

func orderResponseFromView(view queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = OrderItemResponse{
			ID:               item.ID,
			PizzaID:          item.PizzaID,
			PizzaName:        item.PizzaName,
			PizzaDescription: item.PizzaDescription,
			PizzaPrice:       item.PizzaPrice,
			Quantity:         item.Quantity,
			Notes:            item.Notes,
		}
	}

	return OrderResponse{
		ID:                view.ID,
		Code:              view.Code,
		CustomerName:      view.CustomerName,
		CustomerPhone:     view.CustomerPhone,
		Status:            view.Status,
		StatusDescription: view.StatusDescription,
		CreatedAt:         view.CreatedAt,
		ClaimedAt:         view.ClaimedAt,
		CompletedAt:       view.CompletedAt,
		Items:             items,
	}
}

func orderResponsesFromViews(views []queries.OrderView) []OrderResponse {
	responses := make([]OrderResponse, len(views))
	for i, view := range views {
		responses[i] = orderResponseFromView(view)
	}
	return responses
}

func pizzaResponseFromCommand(resp commands.PizzaResponse) PizzaResponse {
	return PizzaResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
		Price:       resp.Price,
		Available:   resp.Available,
	}
}

func pizzaResponsesFromViews(views []queries.PizzaView) []PizzaResponse {
	responses := make([]PizzaResponse, len(views))
	for i, view := range views {
		responses[i] = PizzaResponse{
			ID:          view.ID,
			Name:        view.Name,
			Description: view.Description,
			Price:       view.Price,
			Available:   view.Available,
		}
	}
	return responses
}

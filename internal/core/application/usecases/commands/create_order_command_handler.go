package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Validates every line against the catalog, rejects near-identical
// resubmissions within the duplicate window, and persists the order in
// "pending" status under a generated tracking code.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewDuplicateOrderDetector())
//	cmd, _ := NewCreateOrderCommand("Mario Rossi", "+39 333 1234567", lines)
//
//	resp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// resp.Code is the customer's tracking code
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	detector   services.DuplicateOrderDetector
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a
// DuplicateOrderDetector for resubmission filtering.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	detector services.DuplicateOrderDetector,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		detector:   detector,
	}
}

// Handle processes the order placement command.
//
// Each line is resolved against the catalog: an unknown pizza id or an
// unavailable pizza rejects the whole submission. A submission equivalent to
// an order created within the duplicate window is rejected with
// order.ErrDuplicateOrder. On success the stored order is re-read inside the
// same transaction so the returned snapshot carries the assigned keys.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (OrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	pizzaRepo := uow.PizzaRepository()

	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.NewItem(line.PizzaID, line.Quantity, line.Notes)
		if err != nil {
			return OrderResponse{}, err
		}

		pizza, err := pizzaRepo.Get(ctx, line.PizzaID)
		if err != nil {
			return OrderResponse{}, err
		}
		if !pizza.Available() {
			return OrderResponse{}, menu.NewPizzaNotAvailableError(pizza.Name())
		}

		items = append(items, item)
	}

	recent, err := orderRepo.GetCreatedAfter(ctx, time.Now().UTC().Add(-services.DuplicateWindow))
	if err != nil {
		return OrderResponse{}, err
	}
	if h.detector.IsDuplicate(cmd.CustomerName(), cmd.CustomerPhone(), items, recent) {
		return OrderResponse{}, order.ErrDuplicateOrder
	}

	newOrder, err := order.NewOrder(kernel.NewOrderCode(), cmd.CustomerName(), cmd.CustomerPhone(), items)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return OrderResponse{}, err
	}

	stored, err := orderRepo.GetByCode(ctx, newOrder.Code())
	if err != nil {
		return OrderResponse{}, err
	}

	response, err := newOrderResponse(ctx, pizzaRepo, stored)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

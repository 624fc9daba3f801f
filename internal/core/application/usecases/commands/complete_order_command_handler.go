package commands

import (
	"context"
)

// CompleteOrderCommandHandler handles the business logic for closing an order.
// Moves a ready order to "completed" and stamps the completion time.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Returns errs.ObjectNotFoundError for an unknown code and
// *order.InvalidTransitionError when the order is not ready.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (OrderResponse, error) {
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

	// Plain read, like MarkReady: the claiming worker owns the order past
	// Pending, so completion does not contend with other writers.
	orderRepo := uow.OrderRepository()
	completedOrder, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = completedOrder.Complete(); err != nil {
		return OrderResponse{}, err
	}

	if err = orderRepo.Update(ctx, completedOrder); err != nil {
		return OrderResponse{}, err
	}

	response, err := newOrderResponse(ctx, uow.PizzaRepository(), completedOrder)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

package commands

import (
	"context"
)

// MarkOrderReadyCommandHandler handles the business logic for finishing
// preparation. Moves an order from "in progress" to "ready".
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderReadyCommandHandler creates a handler for the ready transition.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ready command.
// Returns errs.ObjectNotFoundError for an unknown code and
// *order.InvalidTransitionError when the order is not in progress.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) (OrderResponse, error) {
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

	// Plain read: transitions out of InProgress are driven by the single
	// worker who claimed the order, so no exclusive lock is taken here.
	orderRepo := uow.OrderRepository()
	readyOrder, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = readyOrder.MarkReady(); err != nil {
		return OrderResponse{}, err
	}

	if err = orderRepo.Update(ctx, readyOrder); err != nil {
		return OrderResponse{}, err
	}

	response, err := newOrderResponse(ctx, uow.PizzaRepository(), readyOrder)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

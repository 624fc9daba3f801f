package commands

import (
	"context"
)

// ClaimOrderCommandHandler handles the business logic for claiming an order.
// Claiming moves a pending order into preparation and stamps the claim time.
//
// The order row is read under an exclusive lock, so two pizzaioli claiming the
// same order serialize: exactly one wins, the loser observes the "in progress"
// state and fails the transition check.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for order claiming.
// Requires an OrderUoWFactory for transactional persistence.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
// Returns errs.ObjectNotFoundError for an unknown code and
// *order.InvalidTransitionError when the order is not pending.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (OrderResponse, error) {
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
	claimedOrder, err := orderRepo.GetByCodeForUpdate(ctx, cmd.OrderCode())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = claimedOrder.Claim(); err != nil {
		return OrderResponse{}, err
	}

	if err = orderRepo.Update(ctx, claimedOrder); err != nil {
		return OrderResponse{}, err
	}

	response, err := newOrderResponse(ctx, uow.PizzaRepository(), claimedOrder)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

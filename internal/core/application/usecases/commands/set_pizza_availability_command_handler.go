package commands

import (
	"context"
)

// SetPizzaAvailabilityCommandHandler handles the business logic for toggling
// catalog availability.
type SetPizzaAvailabilityCommandHandler struct {
	uowFactory PizzaUoWFactory
}

// NewSetPizzaAvailabilityCommandHandler creates a handler for availability
// toggling. Requires a PizzaUoWFactory for transactional persistence.
func NewSetPizzaAvailabilityCommandHandler(uowFactory PizzaUoWFactory) SetPizzaAvailabilityCommandHandler {
	return SetPizzaAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability command.
// Returns errs.ObjectNotFoundError for an unknown pizza id.
func (h *SetPizzaAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetPizzaAvailabilityCommand) (PizzaResponse, error) {
	if err := cmd.Validate(); err != nil {
		return PizzaResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PizzaResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pizzaRepo := uow.PizzaRepository()
	pizza, err := pizzaRepo.Get(ctx, cmd.PizzaID())
	if err != nil {
		return PizzaResponse{}, err
	}

	pizza.SetAvailable(cmd.Available())
	if err = pizzaRepo.Update(ctx, pizza); err != nil {
		return PizzaResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PizzaResponse{}, err
	}

	return newPizzaResponse(pizza), nil
}

package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/menu"
)

// CreatePizzaCommandHandler handles the business logic for extending the
// catalog. New pizzas start available.
type CreatePizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

// NewCreatePizzaCommandHandler creates a handler for catalog creation.
// Requires a PizzaUoWFactory for transactional persistence.
func NewCreatePizzaCommandHandler(uowFactory PizzaUoWFactory) CreatePizzaCommandHandler {
	return CreatePizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog creation command.
// Returns *menu.PizzaAlreadyExistsError when the name is already taken.
func (h *CreatePizzaCommandHandler) Handle(ctx context.Context, cmd CreatePizzaCommand) (PizzaResponse, error) {
	if err := cmd.Validate(); err != nil {
		return PizzaResponse{}, err
	}

	pizza, err := menu.NewPizza(cmd.Name(), cmd.Description(), cmd.Price())
	if err != nil {
		return PizzaResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PizzaResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pizzaRepo := uow.PizzaRepository()
	if err = pizzaRepo.Add(ctx, pizza); err != nil {
		return PizzaResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PizzaResponse{}, err
	}

	return newPizzaResponse(pizza), nil
}

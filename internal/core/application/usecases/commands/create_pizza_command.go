package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePizzaCommandIsNotConstructed = errors.New(
	"CreatePizzaCommand must be created via NewCreatePizzaCommand constructor",
)

// CreatePizzaCommand represents a request to add a pizza to the catalog.
// Field-level validation (name bounds, positive price) lives in the menu
// aggregate; the command only carries the raw values.
type CreatePizzaCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreatePizzaCommand creates a command to add a catalog entry.
func NewCreatePizzaCommand(name string, description string, price decimal.Decimal) (CreatePizzaCommand, error) {
	pizzaCommand := CreatePizzaCommand{
		name:        name,
		description: description,
		price:       price,

		guard: guard.NewConstructorGuard(),
	}

	return pizzaCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePizzaCommandIsNotConstructed if validation fails.
func (c CreatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrCreatePizzaCommandIsNotConstructed)
}

// Name returns the pizza name.
func (c CreatePizzaCommand) Name() string {
	return c.name
}

// Description returns the pizza description.
func (c CreatePizzaCommand) Description() string {
	return c.description
}

// Price returns the pizza price.
func (c CreatePizzaCommand) Price() decimal.Decimal {
	return c.price
}

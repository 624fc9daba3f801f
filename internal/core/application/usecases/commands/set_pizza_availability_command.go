package commands

import (
	"errors"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrSetPizzaAvailabilityCommandIsNotConstructed = errors.New(
	"SetPizzaAvailabilityCommand must be created via NewSetPizzaAvailabilityCommand constructor",
)

// SetPizzaAvailabilityCommand represents a request to toggle whether a catalog
// entry can be ordered. Unavailable pizzas stay visible in the full catalog
// but reject new order lines.
type SetPizzaAvailabilityCommand struct { //nolint:recvcheck //using for validation
	pizzaID   int64
	available bool

	guard guard.ConstructorGuard
}

// NewSetPizzaAvailabilityCommand creates a command to toggle availability.
func NewSetPizzaAvailabilityCommand(pizzaID int64, available bool) (SetPizzaAvailabilityCommand, error) {
	availabilityCommand := SetPizzaAvailabilityCommand{
		available: available,

		guard: guard.NewConstructorGuard(),
	}

	if err := availabilityCommand.setPizzaID(pizzaID); err != nil {
		return SetPizzaAvailabilityCommand{}, err
	}

	return availabilityCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetPizzaAvailabilityCommandIsNotConstructed if validation fails.
func (c SetPizzaAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetPizzaAvailabilityCommandIsNotConstructed)
}

// PizzaID returns the id of the catalog entry to toggle.
func (c SetPizzaAvailabilityCommand) PizzaID() int64 {
	return c.pizzaID
}

// Available returns the requested availability state.
func (c SetPizzaAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetPizzaAvailabilityCommand) setPizzaID(pizzaID int64) error {
	if pizzaID <= 0 {
		return errs.NewValueIsInvalidError("pizzaID")
	}

	c.pizzaID = pizzaID
	return nil
}

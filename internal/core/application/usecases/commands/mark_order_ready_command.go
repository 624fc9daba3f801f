package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand represents a pizzaiolo's report that preparation of an
// order has finished and it is ready for pickup.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderCode kernel.OrderCode

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a command to mark an order as ready.
// Returns an error if the order code is not a valid tracking code.
func NewMarkOrderReadyCommand(orderCode kernel.OrderCode) (MarkOrderReadyCommand, error) {
	readyCommand := MarkOrderReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := readyCommand.setOrderCode(orderCode); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return readyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOrderReadyCommandIsNotConstructed if validation fails.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// OrderCode returns the tracking code of the order to mark ready.
func (c MarkOrderReadyCommand) OrderCode() kernel.OrderCode {
	return c.orderCode
}

func (c *MarkOrderReadyCommand) setOrderCode(orderCode kernel.OrderCode) error {
	if err := orderCode.Validate(); err != nil {
		return err
	}

	c.orderCode = orderCode
	return nil
}

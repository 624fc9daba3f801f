package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the handover of a ready order to the
// customer, closing its lifecycle.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderCode kernel.OrderCode

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete a ready order.
// Returns an error if the order code is not a valid tracking code.
func NewCompleteOrderCommand(orderCode kernel.OrderCode) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := completeCommand.setOrderCode(orderCode); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderCode returns the tracking code of the order to complete.
func (c CompleteOrderCommand) OrderCode() kernel.OrderCode {
	return c.orderCode
}

func (c *CompleteOrderCommand) setOrderCode(orderCode kernel.OrderCode) error {
	if err := orderCode.Validate(); err != nil {
		return err
	}

	c.orderCode = orderCode
	return nil
}

package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a pizzaiolo's request to take an order into
// preparation. Identified by the order's tracking code.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderCode kernel.OrderCode

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim a pending order.
// Returns an error if the order code is not a valid tracking code.
func NewClaimOrderCommand(orderCode kernel.OrderCode) (ClaimOrderCommand, error) {
	claimCommand := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := claimCommand.setOrderCode(orderCode); err != nil {
		return ClaimOrderCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClaimOrderCommandIsNotConstructed if validation fails.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderCode returns the tracking code of the order to claim.
func (c ClaimOrderCommand) OrderCode() kernel.OrderCode {
	return c.orderCode
}

func (c *ClaimOrderCommand) setOrderCode(orderCode kernel.OrderCode) error {
	if err := orderCode.Validate(); err != nil {
		return err
	}

	c.orderCode = orderCode
	return nil
}

package order

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory functions.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrOrderHasNoItems is returned when an order is created without any line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrDuplicateOrder is returned when an equivalent order from the same
	// customer was already placed within the duplicate-submission window.
	ErrDuplicateOrder = errors.New("a similar order was already placed recently")

	// ErrInvalidTransition is the classification target for status transitions
	// attempted from a wrong source state.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrOrderCodeTaken is the classification target for inserts colliding
	// with an existing tracking code.
	ErrOrderCodeTaken = errors.New("order code is already in use")

	// ErrQuantityIsInvalid is the classification target for line items with
	// a missing or non-positive quantity.
	ErrQuantityIsInvalid = errors.New("quantity is invalid")
)

// InvalidTransitionError reports an operation invoked while the order was not
// in the required source status. It carries the order code and the actual
// current status so the boundary can surface both to the caller.
type InvalidTransitionError struct {
	OrderCode string
	Action    string
	Required  Status
	Current   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// order code and action, recording the required and actual statuses.
func NewInvalidTransitionError(orderCode string, action string, required Status, current Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		OrderCode: orderCode,
		Action:    action,
		Required:  required,
		Current:   current,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s cannot be %s: status must be %s but is %s",
		e.OrderCode, e.Action, e.Required, e.Current)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidQuantityError reports a line item quantity below the minimum of 1.
type InvalidQuantityError struct {
	Quantity int
}

// NewInvalidQuantityError creates an InvalidQuantityError for the given quantity.
func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{Quantity: quantity}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity is invalid: %d, must be at least 1", e.Quantity)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrQuantityIsInvalid
}

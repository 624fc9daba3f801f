package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrPizzaIsNotConstructed is returned when a Pizza instance was not
	// created through the NewPizza or RestorePizza factory functions.
	ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza or RestorePizza")

	// ErrPizzaNotAvailable is the classification target for orders
	// referencing a pizza whose availability flag is off.
	ErrPizzaNotAvailable = errors.New("pizza is not available")

	// ErrPizzaAlreadyExists is the classification target for catalog inserts
	// colliding with an existing pizza name.
	ErrPizzaAlreadyExists = errors.New("pizza already exists")
)

// PizzaNotAvailableError reports an order line referencing a pizza that is
// currently flagged unavailable.
type PizzaNotAvailableError struct {
	Name string
}

// NewPizzaNotAvailableError creates a PizzaNotAvailableError for the named pizza.
func NewPizzaNotAvailableError(name string) *PizzaNotAvailableError {
	return &PizzaNotAvailableError{Name: name}
}

func (e *PizzaNotAvailableError) Error() string {
	return fmt.Sprintf("pizza %q is not available", e.Name)
}

func (e *PizzaNotAvailableError) Unwrap() error {
	return ErrPizzaNotAvailable
}

// PizzaAlreadyExistsError reports a catalog insert with a name already in use.
type PizzaAlreadyExistsError struct {
	Name string
}

// NewPizzaAlreadyExistsError creates a PizzaAlreadyExistsError for the named pizza.
func NewPizzaAlreadyExistsError(name string) *PizzaAlreadyExistsError {
	return &PizzaAlreadyExistsError{Name: name}
}

func (e *PizzaAlreadyExistsError) Error() string {
	return fmt.Sprintf("pizza %q already exists", e.Name)
}

func (e *PizzaAlreadyExistsError) Unwrap() error {
	return ErrPizzaAlreadyExists
}

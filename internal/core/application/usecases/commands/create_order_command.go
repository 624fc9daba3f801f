package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// OrderLine is one raw line of an incoming order submission, before the
// catalog has been consulted.
type OrderLine struct {
	PizzaID  int64
	Quantity int
	Notes    *string
}

// CreateOrderCommand represents a customer's request to place a new order.
// Carries the customer's contact details and the requested lines; the order
// code is generated by the handler, never supplied by the caller.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Mario Rossi", "+39 333 1234567", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, detector)
//	resp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed, track it with this code", resp.Code)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName  string
	customerPhone string
	lines         []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer name is present and that the submission carries
// at least one line; the phone is optional. Per-line validation (quantity,
// catalog existence, availability) is deferred to the handler.
func NewCreateOrderCommand(customerName string, customerPhone string, lines []OrderLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerName(customerName),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.customerPhone = customerPhone
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the name of the customer placing the order.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the contact phone of the customer placing the order,
// empty if not given.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return order.ErrOrderHasNoItems
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

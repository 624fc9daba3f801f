package menu

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// Pizza is a catalog entry: a keyed record with a name, description, price
// and availability flag. The catalog has no lifecycle beyond editing these
// attributes; orders reference pizzas by id and read their attributes live
// at response-assembly time.
type Pizza struct {
	// id is the internal storage key, zero until persisted
	id int64

	// name is unique within the catalog
	name string

	// description lists the toppings
	description string

	// price is the unit price
	price decimal.Decimal

	// available marks whether the pizza can currently be ordered
	available bool

	// isConstructed ensures the pizza was created via NewPizza or RestorePizza
	isConstructed bool
}

// NewPizza creates a new available catalog entry with validation.
func NewPizza(name string, description string, price decimal.Decimal) (*Pizza, error) {
	p := &Pizza{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setDescription(description),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePizza reconstructs a catalog entry from persistence.
func RestorePizza(id int64, name string, description string, price decimal.Decimal, available bool) (*Pizza, error) {
	p, err := NewPizza(name, description, price)
	if err != nil {
		return nil, err
	}

	p.id = id
	p.available = available
	return p, nil
}

// Validate ensures the Pizza was created through NewPizza or RestorePizza.
func (p *Pizza) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPizzaIsNotConstructed
	}
	return nil
}

// ID returns the internal storage key, or zero if the pizza is not yet persisted.
func (p *Pizza) ID() int64 {
	return p.id
}

// Name returns the pizza's unique name.
func (p *Pizza) Name() string {
	return p.name
}

// Description returns the topping description.
func (p *Pizza) Description() string {
	return p.description
}

// Price returns the unit price.
func (p *Pizza) Price() decimal.Decimal {
	return p.price
}

// Available reports whether the pizza can currently be ordered.
func (p *Pizza) Available() bool {
	return p.available
}

// SetAvailable updates the availability flag.
func (p *Pizza) SetAvailable(available bool) {
	p.available = available
}

func (p *Pizza) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name", name, 1, maxNameLength)
	}
	p.name = name
	return nil
}

func (p *Pizza) setDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description", description, 0, maxDescriptionLength)
	}
	p.description = description
	return nil
}

func (p *Pizza) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}

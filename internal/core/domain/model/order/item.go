package order

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// maxNotesLength bounds the free-text notes attached to a line item.
const maxNotesLength = 200

// Item represents one pizza within an order: a reference to a catalog pizza,
// a quantity and optional free-text notes. Catalog attributes (name,
// description, price) are not copied onto the item; they are resolved live
// through the catalog at response-assembly time.
//
// Item is a value object owned exclusively by its Order. Items are never
// persisted or referenced independently and are destroyed with their order.
//
// Invariants:
//   - Pizza reference must be set
//   - Quantity must be at least 1
//   - Notes, when present, are bounded in length
type Item struct {
	// id is the storage-assigned key, zero until the owning order is persisted
	id int64

	// pizzaID references the catalog pizza
	pizzaID int64

	// quantity is the number of pizzas ordered (>= 1)
	quantity int

	// notes is optional free text; nil means no notes were given
	notes *string

	// isConstructed ensures the item was created via NewItem or RestoreItem
	isConstructed bool
}

// NewItem creates a validated line item for a new order.
//
// Returns ErrQuantityIsInvalid (via InvalidQuantityError) for quantities
// below 1 and a range error for notes exceeding the allowed length.
func NewItem(pizzaID int64, quantity int, notes *string) (Item, error) {
	item := Item{isConstructed: true}

	if err := item.setPizzaID(pizzaID); err != nil {
		return Item{}, err
	}
	if err := item.setQuantity(quantity); err != nil {
		return Item{}, err
	}
	if err := item.setNotes(notes); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence, including its
// storage-assigned key.
func RestoreItem(id int64, pizzaID int64, quantity int, notes *string) (Item, error) {
	item, err := NewItem(pizzaID, quantity, notes)
	if err != nil {
		return Item{}, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the Item was created through NewItem or RestoreItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned key, or zero if the item is not yet persisted.
func (i Item) ID() int64 {
	return i.id
}

// PizzaID returns the catalog pizza reference.
func (i Item) PizzaID() int64 {
	return i.pizzaID
}

// Quantity returns the number of pizzas ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Notes returns the optional free-text notes, or nil when none were given.
func (i Item) Notes() *string {
	if i.notes == nil {
		return nil
	}
	notes := *i.notes
	return &notes
}

// Matches reports whether two items reference the same pizza with the same
// quantity and equivalent notes. Notes are compared case-insensitively after
// trimming whitespace; absent notes are equal only to absent notes.
//
// This equivalence drives duplicate-submission detection and is intentionally
// independent of item position within the order.
func (i Item) Matches(other Item) bool {
	return i.pizzaID == other.pizzaID &&
		i.quantity == other.quantity &&
		notesEqual(i.notes, other.notes)
}

func notesEqual(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(*a), strings.TrimSpace(*b))
}

func (i *Item) setPizzaID(pizzaID int64) error {
	if pizzaID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pizzaId",
			fmt.Errorf("%d is not a valid pizza reference", pizzaID))
	}
	i.pizzaID = pizzaID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return NewInvalidQuantityError(quantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setNotes(notes *string) error {
	if notes == nil {
		i.notes = nil
		return nil
	}
	if len(*notes) > maxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes", *notes, 0, maxNotesLength)
	}
	value := *notes
	i.notes = &value
	return nil
}

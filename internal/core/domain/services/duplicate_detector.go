package services

import (
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// DuplicateWindow is the trailing wall-clock interval scanned for equivalent
// resubmissions. It is a fixed policy constant with no configuration surface.
const DuplicateWindow = 5 * time.Minute

// DuplicateOrderDetector is a domain service that decides whether an incoming
// order submission duplicates a recently created order.
//
// A submission is a duplicate of an existing order when all of the following hold:
//   - same customer name
//   - same customer phone
//   - the line sets match exactly: identical cardinality and a one-to-one
//     pairing where each incoming line matches an existing line on
//     {pizza id, quantity, notes}, with notes compared case-insensitively
//     after trimming, and absent notes equal only to absent notes
//
// Line matching is order-independent. This is an anti-flood heuristic, not a
// strong idempotency key; callers provide the recent orders to compare
// against, typically those created within DuplicateWindow.
type DuplicateOrderDetector struct{}

// NewDuplicateOrderDetector creates a new DuplicateOrderDetector instance.
func NewDuplicateOrderDetector() DuplicateOrderDetector {
	return DuplicateOrderDetector{}
}

// IsDuplicate reports whether a submission with the given customer details and
// line items duplicates any of the recent orders.
func (d DuplicateOrderDetector) IsDuplicate(
	customerName string,
	customerPhone string,
	items []order.Item,
	recent []*order.Order,
) bool {
	for _, existing := range recent {
		if existing == nil {
			continue
		}
		if existing.CustomerName() != customerName || existing.CustomerPhone() != customerPhone {
			continue
		}
		if sameLineSet(items, existing.Items()) {
			return true
		}
	}
	return false
}

// lineKey is the normalized identity of a line item for multiset comparison.
type lineKey struct {
	pizzaID  int64
	quantity int
	notes    string
	hasNotes bool
}

func keyOf(item order.Item) lineKey {
	key := lineKey{
		pizzaID:  item.PizzaID(),
		quantity: item.Quantity(),
	}
	if notes := item.Notes(); notes != nil {
		key.hasNotes = true
		key.notes = strings.ToLower(strings.TrimSpace(*notes))
	}
	return key
}

// sameLineSet checks multiset equality of normalized line keys. Because line
// equivalence is an equivalence relation, multiset equality is exactly the
// existence of a one-to-one matching between the two line sets.
func sameLineSet(a []order.Item, b []order.Item) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[lineKey]int, len(a))
	for _, item := range a {
		counts[keyOf(item)]++
	}
	for _, item := range b {
		key := keyOf(item)
		counts[key]--
		if counts[key] < 0 {
			return false
		}
	}
	return true
}

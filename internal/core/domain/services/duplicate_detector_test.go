package services_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func mustItem(t *testing.T, pizzaID int64, quantity int, notes *string) order.Item {
	t.Helper()
	item, err := order.NewItem(pizzaID, quantity, notes)
	require.NoError(t, err)
	return item
}

func mustOrder(t *testing.T, name, phone string, items ...order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewOrderCode(), name, phone, items)
	require.NoError(t, err)
	return o
}

func TestDuplicateOrderDetector_IsDuplicate(t *testing.T) {
	detector := services.NewDuplicateOrderDetector()

	t.Run("detects identical resubmission", func(t *testing.T) {
		existing := mustOrder(t, "Mario Rossi", "+391234567890", mustItem(t, 1, 2, nil))
		incoming := []order.Item{mustItem(t, 1, 2, nil)}

		assert.True(t, detector.IsDuplicate("Mario Rossi", "+391234567890", incoming, []*order.Order{existing}))
	})

	t.Run("line order does not matter", func(t *testing.T) {
		existing := mustOrder(t, "Mario Rossi", "+391234567890",
			mustItem(t, 1, 2, nil), mustItem(t, 3, 1, strPtr("well done")))
		incoming := []order.Item{
			mustItem(t, 3, 1, strPtr("well done")),
			mustItem(t, 1, 2, nil),
		}

		assert.True(t, detector.IsDuplicate("Mario Rossi", "+391234567890", incoming, []*order.Order{existing}))
	})

	t.Run("notes match case-insensitively after trimming", func(t *testing.T) {
		existing := mustOrder(t, "Mario Rossi", "+391234567890", mustItem(t, 1, 2, strPtr("  Extra Cheese ")))
		incoming := []order.Item{mustItem(t, 1, 2, strPtr("extra cheese"))}

		assert.True(t, detector.IsDuplicate("Mario Rossi", "+391234567890", incoming, []*order.Order{existing}))
	})

	t.Run("absent notes equal only absent notes", func(t *testing.T) {
		existing := mustOrder(t, "Mario Rossi", "+391234567890", mustItem(t, 1, 2, nil))
		incoming := []order.Item{mustItem(t, 1, 2, strPtr(""))}

		assert.False(t, detector.IsDuplicate("Mario Rossi", "+391234567890", incoming, []*order.Order{existing}))
	})

	t.Run("different customer name is not a duplicate", func(t *testing.T) {
		existing := mustOrder(t, "Mario Rossi", "+391234567890", mustItem(t, 1, 2, nil))
		incoming := []order.Item{mustItem(t, 1, 2, nil)}

		assert.False(t, detector.IsDuplicate("Luigi Verdi", "+391234567890", incoming, []*order.Order{existing}))
	})

	t.Run("different phone is not a duplicate", func(t *testing.T) {
		existing := mustOrder(t, "Mario Rossi", "+391234567890", mustItem(t, 1, 2, nil))
		incoming := []order.Item{mustItem(t, 1, 2, nil)}

		assert.False(t, detector.IsDuplicate("Mario Rossi", "+390000000000", incoming, []*order.Order{existing}))
	})

	t.Run("different cardinality is not a duplicate", func(t *testing.T) {
		existing := mustOrder(t, "Mario Rossi", "+391234567890", mustItem(t, 1, 2, nil))
		incoming := []order.Item{mustItem(t, 1, 2, nil), mustItem(t, 1, 2, nil)}

		assert.False(t, detector.IsDuplicate("Mario Rossi", "+391234567890", incoming, []*order.Order{existing}))
	})

	t.Run("repeated lines require one-to-one pairing", func(t *testing.T) {
		// Existing has two distinct lines; incoming repeats one of them.
		existing := mustOrder(t, "Mario Rossi", "+391234567890",
			mustItem(t, 1, 2, nil), mustItem(t, 2, 1, nil))
		incoming := []order.Item{mustItem(t, 1, 2, nil), mustItem(t, 1, 2, nil)}

		assert.False(t, detector.IsDuplicate("Mario Rossi", "+391234567890", incoming, []*order.Order{existing}))
	})

	t.Run("different quantity is not a duplicate", func(t *testing.T) {
		existing := mustOrder(t, "Mario Rossi", "+391234567890", mustItem(t, 1, 2, nil))
		incoming := []order.Item{mustItem(t, 1, 3, nil)}

		assert.False(t, detector.IsDuplicate("Mario Rossi", "+391234567890", incoming, []*order.Order{existing}))
	})

	t.Run("no recent orders is never a duplicate", func(t *testing.T) {
		incoming := []order.Item{mustItem(t, 1, 2, nil)}

		assert.False(t, detector.IsDuplicate("Mario Rossi", "+391234567890", incoming, nil))
	})

	t.Run("any matching recent order triggers detection", func(t *testing.T) {
		other := mustOrder(t, "Luigi Verdi", "+390000000000", mustItem(t, 5, 1, nil))
		match := mustOrder(t, "Mario Rossi", "+391234567890", mustItem(t, 1, 2, nil))
		incoming := []order.Item{mustItem(t, 1, 2, nil)}

		assert.True(t, detector.IsDuplicate("Mario Rossi", "+391234567890", incoming, []*order.Order{other, match}))
	})
}

package order_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.InProgress, order.Ready, order.Completed} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range status fails validation", func(t *testing.T) {
		err := order.Status(99).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "IN_PROGRESS", order.InProgress.String())
	assert.Equal(t, "READY", order.Ready.String())
	assert.Equal(t, "COMPLETED", order.Completed.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.InProgress, order.Ready, order.Completed} {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "UNKNOWN", "pending", "CANCELLED"} {
			_, err := order.StatusFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestStatus_TransitionGuards(t *testing.T) {
	t.Run("only pending orders can be claimed", func(t *testing.T) {
		assert.True(t, order.Pending.CanClaim())
		assert.False(t, order.InProgress.CanClaim())
		assert.False(t, order.Ready.CanClaim())
		assert.False(t, order.Completed.CanClaim())
		assert.False(t, order.Unknown.CanClaim())
	})

	t.Run("only in-progress orders can be marked ready", func(t *testing.T) {
		assert.False(t, order.Pending.CanMarkReady())
		assert.True(t, order.InProgress.CanMarkReady())
		assert.False(t, order.Ready.CanMarkReady())
		assert.False(t, order.Completed.CanMarkReady())
	})

	t.Run("only ready orders can be completed", func(t *testing.T) {
		assert.False(t, order.Pending.CanComplete())
		assert.False(t, order.InProgress.CanComplete())
		assert.True(t, order.Ready.CanComplete())
		assert.False(t, order.Completed.CanComplete())
	})
}

func TestStatus_Description(t *testing.T) {
	// Presentation lookup only; every valid status has one.
	for _, s := range []order.Status{order.Pending, order.InProgress, order.Ready, order.Completed} {
		assert.NotEmpty(t, s.Description())
		assert.NotEqual(t, "Unknown", s.Description())
	}
	assert.Equal(t, "Unknown", order.Unknown.Description())
}

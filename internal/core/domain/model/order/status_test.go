package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Confirmed.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(7).Validate())
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("pending becomes confirmed", func(t *testing.T) {
		next, err := order.Pending.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("confirmed cannot be confirmed again", func(t *testing.T) {
		_, err := order.Confirmed.Confirm()

		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	})

	t.Run("unknown cannot be confirmed", func(t *testing.T) {
		_, err := order.Unknown.Confirm()

		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, order.Pending.CanTransitionTo(order.Confirmed))
	assert.False(t, order.Pending.CanTransitionTo(order.Pending))
	assert.False(t, order.Confirmed.CanTransitionTo(order.Confirmed))
	assert.False(t, order.Confirmed.CanTransitionTo(order.Pending))
}

func TestStatus_ValidateEdit(t *testing.T) {
	require.NoError(t, order.Pending.ValidateEdit())
	require.ErrorIs(t, order.Confirmed.ValidateEdit(), order.ErrInvalidStateTransition)
}

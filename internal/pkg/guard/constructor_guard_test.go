package guard_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	errAddressNotConstructed := errors.New("Address must be created via NewAddress")

	type address struct {
		line  string
		guard guard.ConstructorGuard
	}

	newAddress := func(line string) (address, error) {
		if line == "" {
			return address{}, errors.New("line is required")
		}
		return address{line: line, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_produces_valid_value", func(t *testing.T) {
		a, err := newAddress("123 Main St")

		require.NoError(t, err)
		require.NoError(t, a.guard.Validate(errAddressNotConstructed))
		assert.Equal(t, "123 Main St", a.line)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var a address

		require.ErrorIs(t, a.guard.Validate(errAddressNotConstructed), errAddressNotConstructed)
	})
}

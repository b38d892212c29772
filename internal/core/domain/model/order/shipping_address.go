package order

import (
	"errors"
	"strings"
	"unicode/utf8"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	MinShippingAddressLength = 10
	MaxShippingAddressLength = 1000
)

var ErrShippingAddressIsNotConstructed = errors.New(
	"ShippingAddress must be created via NewShippingAddress constructor",
)

// ShippingAddress is free-form delivery text bounded to
// MinShippingAddressLength..MaxShippingAddressLength characters after trimming.
type ShippingAddress struct {
	value string
	guard guard.ConstructorGuard
}

func NewShippingAddress(value string) (ShippingAddress, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ShippingAddress{}, errs.NewValueIsRequiredError("shipping address")
	}

	length := utf8.RuneCountInString(value)
	if length < MinShippingAddressLength || length > MaxShippingAddressLength {
		return ShippingAddress{}, errs.NewValueIsOutOfRangeError(
			"shipping address length", length, MinShippingAddressLength, MaxShippingAddressLength,
		)
	}

	return ShippingAddress{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (a ShippingAddress) Validate() error {
	return a.guard.Validate(ErrShippingAddressIsNotConstructed)
}

func (a ShippingAddress) String() string {
	return a.value
}

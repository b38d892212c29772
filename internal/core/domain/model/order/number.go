package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

const (
	numberPrefix    = "ORD-"
	maxNumberLength = 50
)

// Number is the unique human-facing order number. It is assigned once at
// creation and never changes.
type Number string

// NewNumber generates "ORD-" followed by a ULID. ULIDs carry 80 random bits per
// millisecond, so two orders created at the same instant still get distinct
// numbers; the unique index on the column is the backstop.
func NewNumber() Number {
	return Number(numberPrefix + ulid.Make().String())
}

// NumberFromString validates a number received from a caller or from storage.
func NumberFromString(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError("order number")
	}
	if len(s) > maxNumberLength {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("longer than %d characters", maxNumberLength),
		)
	}
	return Number(s), nil
}

func (n Number) String() string {
	return string(n)
}

func (n Number) Validate() error {
	_, err := NumberFromString(string(n))
	return err
}

package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrInvalidStateTransition is returned when an operation requires a status the
// order is not in.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// Status is the lifecycle state of an order.
//
//	Pending ──> Confirmed
//
// Pending is set exactly once at creation; Confirmed is terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Pending orders can be edited and confirmed.
	Pending
	// Confirmed orders are closed for edits.
	Confirmed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Confirmed:
		return "Confirmed"
	default:
		return "Unknown"
	}
}

// Validate accepts Pending and Confirmed only.
func (s Status) Validate() error {
	if s != Pending && s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateEdit reports whether line items may be replaced in this status.
func (s Status) ValidateEdit() error {
	if s != Pending {
		return fmt.Errorf("%w: %s order cannot be edited", ErrInvalidStateTransition, s)
	}
	return nil
}

// Confirm returns the status that follows a successful confirmation.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Everything else, including Confirmed -> Confirmed, fails with ErrInvalidStateTransition.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, fmt.Errorf("%w: %s order cannot be confirmed", ErrInvalidStateTransition, s)
	}
	return Confirmed, nil
}

// CanTransitionTo reports whether from -> to is an edge of the state machine.
func (s Status) CanTransitionTo(to Status) bool {
	next, err := s.Confirm()
	return err == nil && next == to
}

package order

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a status change is outside the
// transition table.
var ErrIllegalTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Waiting ──┬──> Accepted
//	          └──> Refused
//	Unpaid ───┬──> Paid ──> Completed
//	          └──> Cancelled
//
// Completed, Refused and Cancelled are final states. The remaining statuses
// exist for orders restored from persistence and allow no transitions of
// their own.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status of a new order. Products can only be
	// split into shipments while the order is Waiting.
	Waiting

	// Accepted indicates every product on the order has been split and the
	// order has been priced.
	Accepted

	// ProbablyProceed marks an order flagged as likely to proceed.
	ProbablyProceed

	// Processing indicates the order's shipments are in transit.
	Processing

	// Completed indicates the order has been delivered and settled.
	// This is a final state.
	Completed

	// Refused indicates the order was declined while Waiting.
	// This is a final state.
	Refused

	// Cancelled indicates an unpaid order was withdrawn.
	// This is a final state.
	Cancelled

	// Paid indicates payment for the order has been received.
	Paid

	// Unpaid indicates the order awaits payment.
	Unpaid
)

// getStatusStrings returns a map of Status values to their wire
// representations. The strings are the persistence format and must not change.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Waiting:         "waiting",
		Accepted:        "accepted",
		ProbablyProceed: "probablyProceed",
		Processing:      "processing",
		Completed:       "completed",
		Refused:         "refused",
		Cancelled:       "cancel",
		Paid:            "pay",
		Unpaid:          "unpay",
	}
}

// getStatusTransitions returns the full transition table. A status missing
// from the map allows no transitions.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Waiting: {Accepted, Refused},
		Unpaid:  {Paid, Cancelled},
		Paid:    {Completed},
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements the fmt.Stringer interface and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the transition table allows moving from
// the current status to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to next if the transition table allows it.
//
// Returns:
//   - (next, nil) on an allowed transition
//   - (0, error) wrapping ErrIllegalTransition otherwise
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, fmt.Errorf("%w: %s to %s", ErrIllegalTransition, s, next)
	}
	return next, nil
}

// IsFinal reports whether the status allows no further transitions.
func (s Status) IsFinal() bool {
	return len(getStatusTransitions()[s]) == 0
}

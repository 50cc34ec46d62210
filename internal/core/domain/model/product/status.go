package product

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the split state of a product.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending indicates the product has not been split into shipments yet.
	StatusPending

	// StatusAlreadySplit indicates the product has a shipment set.
	StatusAlreadySplit
)

// getStatusStrings returns a map of Status values to their wire
// representations. The strings are the persistence format and must not change.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:      "pending",
		StatusAlreadySplit: "already",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid product status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid product status", s))
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

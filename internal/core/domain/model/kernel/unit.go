package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Unit is the closed set of quantity units a product can be measured in.
// Each unit selects its own tier list in a delivery service's price table.
type Unit int

const (
	// UnitUnknown represents an invalid or undefined unit.
	// This value (0) helps catch uninitialized Unit values.
	UnitUnknown Unit = iota

	// UnitKilogram measures product quantity by weight in kilograms.
	UnitKilogram

	// UnitTon measures product quantity by weight in metric tons.
	UnitTon

	// UnitCubicMeter measures product quantity by volume in cubic meters.
	UnitCubicMeter
)

func getUnitStrings() map[Unit]string {
	return map[Unit]string{
		UnitUnknown:    "unknown",
		UnitKilogram:   "kg",
		UnitTon:        "ton",
		UnitCubicMeter: "m3",
	}
}

// UnitFromString parses a unit from its wire representation ("kg", "ton", "m3").
func UnitFromString(s string) (Unit, error) {
	for unit, str := range getUnitStrings() {
		if unit != UnitUnknown && str == s {
			return unit, nil
		}
	}
	return UnitUnknown, errs.NewValueIsInvalidErrorWithCause("unit",
		fmt.Errorf("%q is not a valid unit", s))
}

// Validate checks if the Unit value is one of the defined units.
func (u Unit) Validate() error {
	if u == UnitUnknown {
		return errs.NewValueIsInvalidErrorWithCause("unit",
			fmt.Errorf("%d is not a valid unit", u))
	}
	if _, ok := getUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("unit",
			fmt.Errorf("%d is not a valid unit", u))
	}
	return nil
}

// String returns the wire representation of the unit.
// Implements the fmt.Stringer interface and is safe on any Unit value.
func (u Unit) String() string {
	if str, ok := getUnitStrings()[u]; ok {
		return str
	}
	return "unknown"
}

package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Zone is the coarse distance classification used to index tiered price
// tables. The ordinal position of a zone among the defined codes selects the
// price column within each tier.
type Zone int

const (
	// ZoneProvincial covers movements within a single province (code "A").
	ZoneProvincial Zone = iota

	// ZoneShortHaul covers movements under 100 km between provinces (code "B").
	ZoneShortHaul

	// ZoneMediumHaul covers movements of 100-300 km (code "C").
	ZoneMediumHaul

	// ZoneLongHaul covers movements over 300 km (code "F").
	ZoneLongHaul
)

// ZoneCount is the number of defined zones; every price tier carries exactly
// this many per-zone prices.
const ZoneCount = 4

func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneProvincial: "A",
		ZoneShortHaul:  "B",
		ZoneMediumHaul: "C",
		ZoneLongHaul:   "F",
	}
}

// ZoneFromString parses a zone from its single-letter code.
func ZoneFromString(s string) (Zone, error) {
	for zone, str := range getZoneStrings() {
		if str == s {
			return zone, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("zone",
		fmt.Errorf("%q is not a valid zone code", s))
}

// Index returns the ordinal position of the zone among the defined codes,
// used to select the price column within a tier.
func (z Zone) Index() int {
	return int(z)
}

// Validate checks if the Zone value is one of the defined zones.
func (z Zone) Validate() error {
	if _, ok := getZoneStrings()[z]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("zone",
			fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the single-letter zone code.
// Implements the fmt.Stringer interface and is safe on any Zone value.
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return "unknown"
}

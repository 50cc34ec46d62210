package pricing

import (
	"fmt"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// feeRoundingStep is the granularity shipment fees are rounded up to.
const feeRoundingStep = 1000

// Tax is a single tax line applied to a shipment fee. An on-base tax adds
// value*basePrice, where basePrice is the pre-tax tier total; otherwise the
// running total is multiplied by 1+value. Negative values have no effect.
type Tax struct {
	Value  float64
	OnBase bool
}

// CalculateFee prices one shipment of the given quantity.
//
// The tier list for the product's unit is walked in order: each application
// of a tier adds its zone price to the total and consumes the tier's quantity
// step. A continuing tier is re-applied until the remaining quantity is
// exhausted; otherwise the walk advances to the next tier. The walk stops
// when the remaining quantity reaches zero or the tiers are exhausted.
//
// Taxes are then applied in declaration order, followed by non-negative flat
// surcharges, and the result is rounded up to the nearest 1000 currency
// units. The fee is monotonically non-decreasing in quantity for a fixed
// zone and price table.
func CalculateFee(
	zone kernel.Zone,
	quantity float64,
	price *Price,
	unit kernel.Unit,
	taxes []Tax,
	surcharges []float64,
) (int64, error) {
	if err := zone.Validate(); err != nil {
		return 0, err
	}
	if quantity <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%f is not greater than 0", quantity))
	}

	tiers, err := price.TiersFor(unit)
	if err != nil {
		return 0, err
	}

	total, err := walkTiers(zone, quantity, tiers)
	if err != nil {
		return 0, err
	}

	base := total
	for _, tax := range taxes {
		if tax.Value < 0 {
			continue
		}
		if tax.OnBase {
			total += base * tax.Value
		} else {
			total *= 1 + tax.Value
		}
	}

	for _, surcharge := range surcharges {
		if surcharge < 0 {
			continue
		}
		total += surcharge
	}

	return int64(math.Ceil(total/feeRoundingStep)) * feeRoundingStep, nil
}

// walkTiers accumulates the pre-tax price over the ordered tier list.
func walkTiers(zone kernel.Zone, quantity float64, tiers []Tier) (float64, error) {
	var total float64

	idx := 0
	remaining := quantity
	for remaining > 0 && idx < len(tiers) {
		tier := tiers[idx]
		zonePrice, err := tier.PriceForZone(zone)
		if err != nil {
			return 0, err
		}

		total += zonePrice
		remaining -= tier.Step()
		if !tier.Continues() {
			idx++
		}
	}

	return total, nil
}

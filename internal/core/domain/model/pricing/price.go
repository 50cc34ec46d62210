package pricing

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrPriceIsNotConstructed is returned when a Price instance was not created
// through the NewPrice factory method.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice constructor")

// ErrTierIsNotConstructed is returned when a Tier was not created through NewTier.
var ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")

// Tier is one step of a tiered price list. It carries one price per distance
// zone. A continuing tier is re-applied until the remaining quantity is
// exhausted; a non-continuing tier is consumed once and the walk advances.
type Tier struct {
	continues bool
	step      float64
	prices    []float64

	isConstructed bool
}

// NewTier creates a price tier.
// The step must be positive and exactly one price per defined zone is required.
func NewTier(continues bool, step float64, prices []float64) (Tier, error) {
	if step <= 0 {
		return Tier{}, errs.NewValueIsInvalidErrorWithCause("step",
			fmt.Errorf("%f is not greater than 0", step))
	}
	if len(prices) != kernel.ZoneCount {
		return Tier{}, errs.NewValueIsInvalidErrorWithCause("prices",
			fmt.Errorf("expected %d zone prices, got %d", kernel.ZoneCount, len(prices)))
	}
	for i, p := range prices {
		if p < 0 {
			return Tier{}, errs.NewValueIsInvalidErrorWithCause("prices",
				fmt.Errorf("price for zone index %d is negative", i))
		}
	}

	tier := Tier{
		continues:     continues,
		step:          step,
		prices:        make([]float64, kernel.ZoneCount),
		isConstructed: true,
	}
	copy(tier.prices, prices)
	return tier, nil
}

// Validate ensures the Tier was properly constructed.
func (t Tier) Validate() error {
	if !t.isConstructed {
		return ErrTierIsNotConstructed
	}
	return nil
}

// Continues reports whether the tier is re-applied until the quantity is exhausted.
func (t Tier) Continues() bool {
	return t.continues
}

// Step returns the quantity consumed by one application of the tier.
func (t Tier) Step() float64 {
	return t.step
}

// PriceForZone returns the tier's price for the given zone.
func (t Tier) PriceForZone(zone kernel.Zone) (float64, error) {
	if err := zone.Validate(); err != nil {
		return 0, err
	}
	return t.prices[zone.Index()], nil
}

// Price is a delivery service's price table: one ordered tier list per
// quantity unit. Price is an aggregate referenced by delivery services.
type Price struct {
	id         kernel.UUID
	kilogram   []Tier
	ton        []Tier
	cubicMeter []Tier

	isConstructed bool
}

// NewPrice creates a price table with one non-empty tier list per unit.
func NewPrice(id kernel.UUID, kilogram, ton, cubicMeter []Tier) (*Price, error) {
	price := &Price{
		isConstructed: true,
	}

	if err := errors.Join(
		price.setID(id),
		price.setTiers(&price.kilogram, "kilogram", kilogram),
		price.setTiers(&price.ton, "ton", ton),
		price.setTiers(&price.cubicMeter, "cubicMeter", cubicMeter),
	); err != nil {
		return nil, err
	}

	return price, nil
}

// RestorePrice reconstructs a price table from persistence.
func RestorePrice(id kernel.UUID, kilogram, ton, cubicMeter []Tier) (*Price, error) {
	return NewPrice(id, kilogram, ton, cubicMeter)
}

// Validate ensures the Price instance was properly constructed.
func (p *Price) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}

// ID returns the price table's unique identifier.
func (p *Price) ID() kernel.UUID {
	return p.id
}

// TiersFor returns the ordered tier list for the given unit.
func (p *Price) TiersFor(unit kernel.Unit) ([]Tier, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	switch unit {
	case kernel.UnitKilogram:
		return p.kilogram, nil
	case kernel.UnitTon:
		return p.ton, nil
	case kernel.UnitCubicMeter:
		return p.cubicMeter, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("unit",
			fmt.Errorf("no tier list for unit %s", unit))
	}
}

func (p *Price) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Price) setTiers(target *[]Tier, paramName string, tiers []Tier) error {
	if len(tiers) == 0 {
		return errs.NewValueIsRequiredError(paramName)
	}
	for _, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return err
		}
	}

	*target = make([]Tier, len(tiers))
	copy(*target, tiers)
	return nil
}

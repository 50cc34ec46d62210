package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrSplitProductCommandIsNotConstructed = errors.New(
		"SplitProductCommand must be created via NewSplitProductCommand constructor",
	)
)

// TaxInput is one tax line to apply when pricing the split's shipments.
type TaxInput struct {
	Value  float64
	OnBase bool
}

// SplitProductCommand represents a request to split a product's quantity
// into priced shipments. Taxes and surcharges are per request, matching how
// operators key them in during acceptance.
type SplitProductCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	quantities []float64
	taxes      []TaxInput
	surcharges []float64

	guard guard.ConstructorGuard
}

// NewSplitProductCommand creates a command to split a product.
// The quantity parts must be non-empty and strictly positive; their sum
// against the product's quantity is checked by the aggregate at handling
// time. Taxes and surcharges are optional.
func NewSplitProductCommand(
	productID kernel.UUID,
	quantities []float64,
	taxes []TaxInput,
	surcharges []float64,
) (SplitProductCommand, error) {
	cmd := SplitProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setQuantities(quantities),
	); err != nil {
		return SplitProductCommand{}, err
	}

	cmd.taxes = make([]TaxInput, len(taxes))
	copy(cmd.taxes, taxes)
	cmd.surcharges = make([]float64, len(surcharges))
	copy(cmd.surcharges, surcharges)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SplitProductCommand) Validate() error {
	return c.guard.Validate(ErrSplitProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to split.
func (c SplitProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantities returns the requested quantity parts.
func (c SplitProductCommand) Quantities() []float64 {
	return c.quantities
}

// Taxes returns the tax lines as domain tax values, in declaration order.
func (c SplitProductCommand) Taxes() []pricing.Tax {
	taxes := make([]pricing.Tax, len(c.taxes))
	for i, tax := range c.taxes {
		taxes[i] = pricing.Tax{Value: tax.Value, OnBase: tax.OnBase}
	}
	return taxes
}

// Surcharges returns the flat surcharge amounts.
func (c SplitProductCommand) Surcharges() []float64 {
	return c.surcharges
}

func (c *SplitProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *SplitProductCommand) setQuantities(quantities []float64) error {
	if len(quantities) == 0 {
		return errs.NewValueIsRequiredError("quantities")
	}
	for _, quantity := range quantities {
		if quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantities",
				fmt.Errorf("%f is not greater than 0", quantity))
		}
	}
	c.quantities = make([]float64, len(quantities))
	copy(c.quantities, quantities)
	return nil
}

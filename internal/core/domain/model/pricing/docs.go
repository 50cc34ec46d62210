// Package pricing provides the tiered price tables of delivery services and
// the shipment fee calculator.
//
// A price table carries one ordered tier list per quantity unit. Each tier
// holds one price per distance zone and a quantity step; a tier marked as
// continuing is re-applied until the remaining quantity is exhausted, which is
// how open-ended final tiers are expressed.
//
// Key business rules:
//   - The zone's ordinal position selects the price column within every tier
//   - Taxes apply after the tier walk, in declaration order
//   - Surcharges are flat additions applied after taxes
//   - Negative tax or surcharge values have no effect, they never subtract
//   - The final fee is rounded up to the nearest 1000 currency units
package pricing

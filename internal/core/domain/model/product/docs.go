// Package product provides the Product aggregate and its shipment split.
//
// A product belongs to one order and carries a quantity in a declared unit.
// Splitting partitions the quantity into shipments: the parts must be
// strictly positive and sum exactly to the product's quantity, so no quantity
// is ever created or lost. Each shipment is priced at split time. A re-split
// replaces the previous shipment set wholesale.
package product

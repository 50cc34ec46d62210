// Package warehouse provides domain entities for the physical warehouse
// network. Warehouses are the vertices of the routing graph and roads are its
// weighted, symmetric edges.
//
// Key business rules:
//   - A warehouse belongs to exactly one province and has a geographic position
//   - A road links two distinct warehouses with a non-negative distance
//   - Travel cost over a road is identical in both directions
package warehouse

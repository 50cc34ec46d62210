// Package kernel provides core domain primitives shared across the logistics
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the bounded contexts.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A value object for geographic coordinates with great-circle distance
//   - Unit: The closed set of quantity units a product can be measured in
//   - Zone: The coarse distance classification used to index tiered price tables
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel

package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates
// and their shipment sets.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate,
	// replacing its stored shipment set.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByOrder retrieves every product belonging to an order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*product.Product, error)
}

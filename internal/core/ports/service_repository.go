package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
)

// ServiceRepository defines the persistence contract for delivery services,
// their coverage records and their price tables.
type ServiceRepository interface {
	// Add persists a new delivery service with its coverage records.
	Add(ctx context.Context, aggregate *delivery.Service) error

	// Update persists changes to an existing delivery service,
	// replacing its stored coverage records.
	Update(ctx context.Context, aggregate *delivery.Service) error

	// Get retrieves a delivery service by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Service, error)

	// GetAll retrieves every delivery service.
	GetAll(ctx context.Context) ([]*delivery.Service, error)

	// GetPrice retrieves a price table by its unique identifier.
	GetPrice(ctx context.Context, id kernel.UUID) (*pricing.Price, error)

	// AddPrice persists a new price table.
	AddPrice(ctx context.Context, price *pricing.Price) error
}

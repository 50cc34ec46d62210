package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses and
// the roads between them. Routing reads full snapshots because the graph is
// rebuilt per computation.
type WarehouseRepository interface {
	// Add persists a new warehouse.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetAll retrieves the full warehouse snapshot.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)

	// AddRoad persists a new road between two warehouses.
	AddRoad(ctx context.Context, road *warehouse.Road) error

	// GetAllRoads retrieves the full road snapshot.
	GetAllRoads(ctx context.Context) ([]*warehouse.Road, error)
}

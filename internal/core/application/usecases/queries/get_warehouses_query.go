package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetWarehousesQueryIsNotConstructed = errors.New(
		"GetWarehousesQuery must be created via NewGetWarehousesQuery constructor",
	)
)

// GetWarehousesQuery retrieves the full warehouse directory.
// This is a parameterless query backing the network map screen.
type GetWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWarehousesQuery creates a query to retrieve all warehouses.
func NewGetWarehousesQuery() GetWarehousesQuery {
	return GetWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehousesQueryIsNotConstructed)
}

// GetWarehousesQueryResponse represents one warehouse of the directory.
type GetWarehousesQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Province string
	Point    kernel.GeoPoint
}

package services

import (
	"errors"
	"math"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// ErrWarehouseNotFound is returned when no covered warehouse is available
// to serve a free-address endpoint.
var ErrWarehouseNotFound = errors.New("warehouse not found")

// WarehouseLocator is a domain service resolving a geographic position to
// the nearest warehouse a delivery service covers.
//
// Business rules:
//   - Only warehouses in covered provinces are candidates
//   - Distance is the great-circle distance to the warehouse position
//   - The first warehouse in snapshot order wins ties
type WarehouseLocator struct{}

// NewWarehouseLocator creates a new WarehouseLocator instance.
func NewWarehouseLocator() WarehouseLocator {
	return WarehouseLocator{}
}

// Nearest finds the covered warehouse closest to the given position.
//
// Returns:
//   - the nearest warehouse on success
//   - ErrWarehouseNotFound when the snapshot holds no covered warehouse
func (l WarehouseLocator) Nearest(
	service *delivery.Service,
	point kernel.GeoPoint,
	warehouses []*warehouse.Warehouse,
) (*warehouse.Warehouse, error) {
	if err := service.Validate(); err != nil {
		return nil, err
	}
	if err := point.Validate(); err != nil {
		return nil, err
	}

	var (
		nearest *warehouse.Warehouse
		bestKm  = math.MaxFloat64
	)

	for _, wh := range warehouses {
		if err := wh.Validate(); err != nil {
			return nil, err
		}
		if !service.Serves(wh.Province()) {
			continue
		}

		km, err := point.DistanceKm(wh.Point())
		if err != nil {
			return nil, err
		}
		if km < bestKm {
			bestKm = km
			nearest = wh
		}
	}

	if nearest == nil {
		return nil, ErrWarehouseNotFound
	}

	return nearest, nil
}

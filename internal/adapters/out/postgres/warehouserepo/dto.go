// Package warehouserepo provides data transfer objects and mapping functions for
// warehouse and road persistence.
package warehouserepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouses.
type WarehouseDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Province string    `gorm:"type:varchar(255);not null;index"`
	Lat      float64   `gorm:"not null"`
	Lon      float64   `gorm:"not null"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// RoadDTO represents the database structure for persisting roads.
type RoadDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null;index"`
	DistanceKm    float64   `gorm:"not null"`
}

// TableName specifies the database table name for road entities.
func (RoadDTO) TableName() string {
	return "roads"
}

func warehouseFromDomain(wh *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:       wh.ID().Bytes(),
		Name:     wh.Name(),
		Province: wh.Province(),
		Lat:      wh.Point().Lat(),
		Lon:      wh.Point().Lon(),
	}
}

func warehouseToDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Name, dto.Province, point)
}

func roadFromDomain(road *warehouse.Road) RoadDTO {
	return RoadDTO{
		ID:            road.ID().Bytes(),
		OriginID:      road.Origin().Bytes(),
		DestinationID: road.Destination().Bytes(),
		DistanceKm:    road.DistanceKm(),
	}
}

func roadToDomain(dto RoadDTO) (*warehouse.Road, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	origin, err := kernel.UUIDFromBytes(dto.OriginID[:])
	if err != nil {
		return nil, err
	}
	destination, err := kernel.UUIDFromBytes(dto.DestinationID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreRoad(id, origin, destination, dto.DistanceKm)
}

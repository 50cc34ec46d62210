package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWarehousesQueryHandler retrieves the warehouse directory from the database.
type GetWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehousesQueryHandler creates a handler for warehouse directory queries.
func NewGetWarehousesQueryHandler(db *gorm.DB) GetWarehousesQueryHandler {
	return GetWarehousesQueryHandler{db: db}
}

// Handle executes the query to retrieve all warehouses sorted by name.
func (h GetWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetWarehousesQuery,
) ([]GetWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]GetWarehousesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			province,
			lat,
			lon
		FROM warehouses
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var warehouseResp GetWarehousesQueryResponse
		var id uuid.UUID
		var lat, lon float64

		err = rows.Scan(
			&id,
			&warehouseResp.Name,
			&warehouseResp.Province,
			&lat,
			&lon,
		)
		if err != nil {
			return nil, err
		}

		warehouseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		warehouseResp.ID = warehouseID

		point, pointErr := kernel.NewGeoPoint(lat, lon)
		if pointErr != nil {
			return nil, pointErr
		}
		warehouseResp.Point = point

		warehouses = append(warehouses, warehouseResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}

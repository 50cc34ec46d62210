// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Quantity float64   `gorm:"not null"`
	Unit     int       `gorm:"type:int;not null"`
	Note     string    `gorm:"type:text"`
	Status   int       `gorm:"type:int;not null"`

	Shipments []ShipmentDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// ShipmentDTO represents one priced part of a split product.
type ShipmentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  float64   `gorm:"not null"`
	Value     int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(prod *product.Product) ProductDTO {
	productID := prod.ID().Bytes()

	shipments := prod.Shipments()
	shipmentDTOs := make([]ShipmentDTO, 0, len(shipments))
	for _, shipment := range shipments {
		shipmentDTOs = append(shipmentDTOs, ShipmentDTO{
			ID:        shipment.ID().Bytes(),
			ProductID: productID,
			Quantity:  shipment.Quantity(),
			Value:     shipment.Value(),
		})
	}

	return ProductDTO{
		ID:        productID,
		OrderID:   prod.OrderID().Bytes(),
		Name:      prod.Name(),
		Quantity:  prod.Quantity(),
		Unit:      int(prod.Unit()),
		Note:      prod.Note(),
		Status:    int(prod.Status()),
		Shipments: shipmentDTOs,
	}
}

// toDomain converts a database DTO to a product domain aggregate.
// Reconstructs the complete aggregate including its shipment set using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	shipments := make([]product.Shipment, 0, len(dto.Shipments))
	for _, shipmentDTO := range dto.Shipments {
		shipmentID, shipmentErr := kernel.UUIDFromBytes(shipmentDTO.ID[:])
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipment, shipmentErr := product.NewShipment(shipmentID, shipmentDTO.Quantity, shipmentDTO.Value)
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipments = append(shipments, shipment)
	}

	return product.RestoreProduct(id, orderID, dto.Name, dto.Quantity,
		kernel.Unit(dto.Unit), dto.Note, product.Status(dto.Status), shipments)
}

// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and delivery service.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index"`

	SenderName    string `gorm:"type:varchar(255);not null"`
	SenderPhone   string `gorm:"type:varchar(32);not null"`
	ReceiverName  string `gorm:"type:varchar(255);not null"`
	ReceiverPhone string `gorm:"type:varchar(32);not null"`

	Origin      EndpointDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination EndpointDTO `gorm:"embedded;embeddedPrefix:destination_"`

	Status     int   `gorm:"type:int;not null;index"`
	TotalPrice int64 `gorm:"type:bigint;not null"`

	RoutePoints []RoutePointDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// EndpointDTO represents one embedded order endpoint. An on-site endpoint
// carries a warehouse reference, a ship endpoint carries the address parts;
// the province is stored for both.
type EndpointDTO struct {
	Kind        int        `gorm:"type:int;not null"`
	WarehouseID *uuid.UUID `gorm:"type:uuid"`
	Street      string     `gorm:"type:varchar(255)"`
	Ward        string     `gorm:"type:varchar(255)"`
	District    string     `gorm:"type:varchar(255)"`
	Province    string     `gorm:"type:varchar(255);not null"`
}

// RoutePointDTO represents one stop of an order's computed route.
type RoutePointDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName specifies the database table name for route point entities.
func (RoutePointDTO) TableName() string {
	return "order_route_points"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(ord *order.Order) OrderDTO {
	orderID := ord.ID().Bytes()

	route := ord.Route()
	routePoints := make([]RoutePointDTO, 0, len(route))
	for i, warehouseID := range route {
		routePoints = append(routePoints, RoutePointDTO{
			OrderID:     orderID,
			Position:    i,
			WarehouseID: warehouseID.Bytes(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		ServiceID:     ord.ServiceID().Bytes(),
		SenderName:    ord.Sender().Name(),
		SenderPhone:   ord.Sender().Phone(),
		ReceiverName:  ord.Receiver().Name(),
		ReceiverPhone: ord.Receiver().Phone(),
		Origin:        endpointFromDomain(ord.Origin()),
		Destination:   endpointFromDomain(ord.Destination()),
		Status:        int(ord.Status()),
		TotalPrice:    ord.TotalPrice(),
		RoutePoints:   routePoints,
	}
}

func endpointFromDomain(endpoint order.Endpoint) EndpointDTO {
	dto := EndpointDTO{
		Kind:     int(endpoint.Kind()),
		Province: endpoint.Province(),
	}

	if warehouseID, err := endpoint.WarehouseID(); err == nil {
		raw := warehouseID.Bytes()
		dto.WarehouseID = &raw
	}
	if address, err := endpoint.Address(); err == nil {
		dto.Street = address.Street()
		dto.Ward = address.Ward()
		dto.District = address.District()
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its route using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	sender, err := order.NewContact(dto.SenderName, dto.SenderPhone)
	if err != nil {
		return nil, err
	}
	receiver, err := order.NewContact(dto.ReceiverName, dto.ReceiverPhone)
	if err != nil {
		return nil, err
	}

	origin, err := endpointToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := endpointToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.RoutePoints, func(i, j int) bool {
		return dto.RoutePoints[i].Position < dto.RoutePoints[j].Position
	})
	route := make([]kernel.UUID, 0, len(dto.RoutePoints))
	for _, point := range dto.RoutePoints {
		warehouseID, pointErr := kernel.UUIDFromBytes(point.WarehouseID[:])
		if pointErr != nil {
			return nil, pointErr
		}
		route = append(route, warehouseID)
	}

	return order.RestoreOrder(id, serviceID, sender, receiver, origin, destination,
		order.Status(dto.Status), route, dto.TotalPrice)
}

func endpointToDomain(dto EndpointDTO) (order.Endpoint, error) {
	if order.EndpointKind(dto.Kind) == order.EndpointOnSite && dto.WarehouseID != nil {
		warehouseID, err := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if err != nil {
			return order.Endpoint{}, err
		}
		return order.NewOnSiteEndpoint(warehouseID, dto.Province)
	}

	address, err := order.NewAddress(dto.Street, dto.Ward, dto.District, dto.Province)
	if err != nil {
		return order.Endpoint{}, err
	}
	return order.NewShipEndpoint(address)
}

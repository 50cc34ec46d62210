package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ComputeRouteCommandHandler computes the shortest warehouse route of an
// order and stores it on the order.
//
// Endpoint resolution:
//   - an on-site endpoint routes from its warehouse
//   - a ship endpoint is geocoded and routes from the nearest covered
//     warehouse
//
// The routing graph is rebuilt from the current warehouse and road
// snapshots on every computation, restricted to the service's coverage.
type ComputeRouteCommandHandler struct {
	uowFactory UoWFactory
	geocoder   ports.Geocoder
	planner    services.RoutePlanner
	locator    services.WarehouseLocator
}

// NewComputeRouteCommandHandler creates a handler for route computation.
func NewComputeRouteCommandHandler(
	uowFactory UoWFactory,
	geocoder ports.Geocoder,
) ComputeRouteCommandHandler {
	return ComputeRouteCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		planner:    services.NewRoutePlanner(),
		locator:    services.NewWarehouseLocator(),
	}
}

// Handle processes the route computation command.
// Propagates services.ErrNoPath when the endpoints are disconnected within
// the service's coverage.
func (h *ComputeRouteCommandHandler) Handle(ctx context.Context, cmd ComputeRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	service, err := uow.ServiceRepository().Get(ctx, ord.ServiceID())
	if err != nil {
		return err
	}

	warehouses, err := uow.WarehouseRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	roads, err := uow.WarehouseRepository().GetAllRoads(ctx)
	if err != nil {
		return err
	}

	origin, err := h.resolveWarehouse(ctx, service, ord.Origin(), warehouses)
	if err != nil {
		return err
	}
	destination, err := h.resolveWarehouse(ctx, service, ord.Destination(), warehouses)
	if err != nil {
		return err
	}

	graph, err := h.planner.BuildGraph(service, warehouses, roads)
	if err != nil {
		return err
	}

	route, err := h.planner.ShortestPath(graph, origin, destination)
	if err != nil {
		return err
	}

	if err = ord.AssignRoute(route.Warehouses); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveWarehouse maps an order endpoint to the warehouse routing starts
// or ends at.
func (h *ComputeRouteCommandHandler) resolveWarehouse(
	ctx context.Context,
	service *delivery.Service,
	endpoint order.Endpoint,
	warehouses []*warehouse.Warehouse,
) (kernel.UUID, error) {
	if endpoint.Kind() == order.EndpointOnSite {
		return endpoint.WarehouseID()
	}

	address, err := endpoint.Address()
	if err != nil {
		return kernel.UUID{}, err
	}

	point, err := h.geocoder.Geocode(ctx, address.String())
	if err != nil {
		return kernel.UUID{}, err
	}

	nearest, err := h.locator.Nearest(service, point, warehouses)
	if err != nil {
		return kernel.UUID{}, err
	}

	return nearest.ID(), nil
}

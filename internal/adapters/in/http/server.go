// Package http implements the inbound HTTP API on top of the generated
// server bindings. It translates requests into commands and queries and maps
// domain failures onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/services"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	computeRouteHandler      commands.ComputeRouteCommandHandler
	splitProductHandler      commands.SplitProductCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getWarehousesHandler     queries.GetWarehousesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	computeRouteHandler commands.ComputeRouteCommandHandler,
	splitProductHandler commands.SplitProductCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getWarehousesHandler queries.GetWarehousesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		computeRouteHandler:      computeRouteHandler,
		splitProductHandler:      splitProductHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getWarehousesHandler:     getWarehousesHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - registers an order with its products.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	serviceID, err := kernel.UUIDFromBytes(newOrder.ServiceId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid service id")
	}

	products := make([]commands.ProductInput, 0, len(newOrder.Products))
	for _, line := range newOrder.Products {
		products = append(products, commands.ProductInput{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     string(line.Unit),
			Note:     stringValue(line.Note),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		serviceID,
		newOrder.Sender.Name, newOrder.Sender.Phone,
		newOrder.Receiver.Name, newOrder.Receiver.Phone,
		endpointInput(newOrder.Origin),
		endpointInput(newOrder.Destination),
		products,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// ComputeOrderRoute handles POST /api/v1/orders/{orderId}/route.
func (s *Server) ComputeOrderRoute(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewComputeRouteCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	if handleErr := s.computeRouteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr, "Failed to compute route")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var statusChange servers.StatusChange
	if err := ctx.Bind(&statusChange); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	next, err := order.StatusFromString(string(statusChange.Status))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Unknown status: "+string(statusChange.Status))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, next)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr, "Failed to change order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SplitProduct handles POST /api/v1/products/{productId}/split.
func (s *Server) SplitProduct(ctx echo.Context, productId openapi_types.UUID) error {
	var splitRequest servers.SplitRequest
	if err := ctx.Bind(&splitRequest); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid product id")
	}

	var taxes []commands.TaxInput
	if splitRequest.Taxes != nil {
		taxes = make([]commands.TaxInput, 0, len(*splitRequest.Taxes))
		for _, tax := range *splitRequest.Taxes {
			taxes = append(taxes, commands.TaxInput{Value: tax.Value, OnBase: tax.OnBase})
		}
	}

	var surcharges []float64
	if splitRequest.Surcharges != nil {
		surcharges = *splitRequest.Surcharges
	}

	cmd, err := commands.NewSplitProductCommand(productID, splitRequest.Quantities, taxes, surcharges)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid split data: "+err.Error())
	}

	if handleErr := s.splitProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr, "Failed to split product")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists orders in a status.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	status, err := order.StatusFromString(string(params.Status))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Unknown status: "+string(params.Status))
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:                  o.ID.Bytes(),
			SenderName:          o.SenderName,
			ReceiverName:        o.ReceiverName,
			OriginProvince:      o.OriginProvince,
			DestinationProvince: o.DestinationProvince,
			TotalPrice:          o.TotalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWarehouses handles GET /api/v1/warehouses - lists the warehouse directory.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	query := queries.NewGetWarehousesQuery()

	warehouses, err := s.getWarehousesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve warehouses")
	}

	response := make([]servers.Warehouse, len(warehouses))
	for i, wh := range warehouses {
		response[i] = servers.Warehouse{
			Id:       wh.ID.Bytes(),
			Name:     wh.Name,
			Province: wh.Province,
			Lat:      wh.Point.Lat(),
			Lon:      wh.Point.Lon(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func endpointInput(endpoint servers.Endpoint) commands.EndpointInput {
	input := commands.EndpointInput{
		Street:   stringValue(endpoint.Street),
		Ward:     stringValue(endpoint.Ward),
		District: stringValue(endpoint.District),
		Province: endpoint.Province,
	}

	if endpoint.WarehouseId != nil {
		if warehouseID, err := kernel.UUIDFromBytes(endpoint.WarehouseId[:]); err == nil {
			input.WarehouseID = &warehouseID
		}
	}

	return input
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// commandErrorResponse maps command failures onto HTTP status codes: missing
// aggregates become 404, business rule conflicts 409, anything else 500.
func commandErrorResponse(ctx echo.Context, err error, fallback string) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	}

	if errors.Is(err, order.ErrIllegalTransition) ||
		errors.Is(err, commands.ErrOrderNotWaiting) ||
		errors.Is(err, commands.ErrProductsNotSplit) ||
		errors.Is(err, commands.ErrProvinceNotCovered) ||
		errors.Is(err, delivery.ErrNotCovered) ||
		errors.Is(err, product.ErrQuantityMismatch) ||
		errors.Is(err, services.ErrNoPath) ||
		errors.Is(err, services.ErrWarehouseNotFound) {
		return errorResponse(ctx, http.StatusConflict, err.Error())
	}

	return errorResponse(ctx, http.StatusInternalServerError, fallback)
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"
)

// ErrProvinceNotCovered is returned when an endpoint lies in a province the
// chosen delivery service does not cover.
var ErrProvinceNotCovered = errors.New("endpoint province is not covered by the delivery service")

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates the order in the Waiting status together with its product lines,
// after checking both endpoints against the service's coverage.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command.
//
// Both endpoints are resolved against the chosen delivery service: an
// on-site endpoint's warehouse must exist and lie in a covered province, a
// ship endpoint's address province must be covered. The order and all of its
// products persist in one transaction; the order starts Waiting.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	service, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID())
	if err != nil {
		return err
	}

	origin, err := h.resolveEndpoint(ctx, uow, service, cmd.Origin())
	if err != nil {
		return err
	}
	destination, err := h.resolveEndpoint(ctx, uow, service, cmd.Destination())
	if err != nil {
		return err
	}

	sender, err := order.NewContact(cmd.SenderName(), cmd.SenderPhone())
	if err != nil {
		return err
	}
	receiver, err := order.NewContact(cmd.ReceiverName(), cmd.ReceiverPhone())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), service.ID(), sender, receiver, origin, destination)
	if err != nil {
		return err
	}
	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	for _, line := range cmd.Products() {
		unit, unitErr := kernel.UnitFromString(line.Unit)
		if unitErr != nil {
			return unitErr
		}

		newProduct, productErr := product.NewProduct(
			kernel.NewUUID(), newOrder.ID(), line.Name, line.Quantity, unit, line.Note)
		if productErr != nil {
			return productErr
		}
		if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// resolveEndpoint turns an endpoint input into a domain endpoint, enforcing
// the service's coverage on the endpoint's province.
func (h *CreateOrderCommandHandler) resolveEndpoint(
	ctx context.Context,
	uow UoW,
	service *delivery.Service,
	input EndpointInput,
) (order.Endpoint, error) {
	if input.WarehouseID != nil {
		wh, err := uow.WarehouseRepository().Get(ctx, *input.WarehouseID)
		if err != nil {
			return order.Endpoint{}, err
		}
		if !service.Serves(wh.Province()) {
			return order.Endpoint{}, fmt.Errorf("%w: %s", ErrProvinceNotCovered, wh.Province())
		}
		return order.NewOnSiteEndpoint(wh.ID(), wh.Province())
	}

	if !service.Serves(input.Province) {
		return order.Endpoint{}, fmt.Errorf("%w: %s", ErrProvinceNotCovered, input.Province)
	}

	address, err := order.NewAddress(input.Street, input.Ward, input.District, input.Province)
	if err != nil {
		return order.Endpoint{}, err
	}
	return order.NewShipEndpoint(address)
}

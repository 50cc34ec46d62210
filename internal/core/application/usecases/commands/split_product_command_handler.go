package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/order"
)

// ErrOrderNotWaiting is returned when a split is attempted on an order that
// already left the Waiting status.
var ErrOrderNotWaiting = errors.New("order is not in waiting status")

// SplitProductCommandHandler splits one product of a Waiting order into
// priced shipments.
//
// The shipment fee is derived from the order's endpoint provinces: their
// distance zone under the order's delivery service selects the price column
// of the service's price table, and the product's unit selects the tier
// list. A re-split replaces the previous shipment set.
type SplitProductCommandHandler struct {
	uowFactory UoWFactory
}

// NewSplitProductCommandHandler creates a handler for product splits.
func NewSplitProductCommandHandler(uowFactory UoWFactory) SplitProductCommandHandler {
	return SplitProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the split command.
//
// Fails with ErrOrderNotWaiting when the owning order left Waiting,
// delivery.ErrNotCovered when the endpoint provinces have no distance
// record, and product.ErrQuantityMismatch when the parts do not partition
// the product's quantity.
func (h *SplitProductCommandHandler) Handle(ctx context.Context, cmd SplitProductCommand) error {
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

	prod, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, prod.OrderID())
	if err != nil {
		return err
	}
	if ord.Status() != order.Waiting {
		return fmt.Errorf("%w: %s", ErrOrderNotWaiting, ord.Status())
	}

	service, err := uow.ServiceRepository().Get(ctx, ord.ServiceID())
	if err != nil {
		return err
	}

	price, err := uow.ServiceRepository().GetPrice(ctx, service.PriceID())
	if err != nil {
		return err
	}

	err = prod.Split(cmd.Quantities(), func(quantity float64) (int64, error) {
		return service.FeeFor(
			ord.Origin().Province(), ord.Destination().Province(),
			quantity, prod.Unit(), price, cmd.Taxes(), cmd.Surcharges())
	})
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Update(ctx, prod); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

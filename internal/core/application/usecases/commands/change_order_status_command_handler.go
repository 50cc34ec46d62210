package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// ErrProductsNotSplit is returned when an order is moved to Accepted while
// at least one of its products has no shipment set yet.
var ErrProductsNotSplit = errors.New("not all products of the order are split")

// ChangeOrderStatusCommandHandler moves an order through its lifecycle.
//
// Business rules:
//   - The transition must be in the order status table
//   - Waiting to Accepted additionally requires every product split
//   - Leaving Waiting recomputes the order's total price from its
//     shipments, committed atomically with the status
//   - Entering a customer-visible status publishes an event after commit,
//     fire and forget
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderProductUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderProductUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle processes the status change command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	leavingWaiting := ord.Status() == order.Waiting

	if err = ord.ChangeStatus(cmd.Next()); err != nil {
		return err
	}

	if leavingWaiting {
		products, productsErr := uow.ProductRepository().GetAllByOrder(ctx, ord.ID())
		if productsErr != nil {
			return productsErr
		}

		if cmd.Next() == order.Accepted {
			for _, prod := range products {
				if !prod.IsSplit() {
					return fmt.Errorf("%w: product %s", ErrProductsNotSplit, prod.ID())
				}
			}
		}

		var total int64
		for _, prod := range products {
			total += prod.ShipmentsValue()
		}
		if err = ord.SetTotalPrice(total); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, ord)
	return nil
}

// publish emits the status event for customer-visible statuses. Failures
// are logged only; the status change is already committed.
func (h *ChangeOrderStatusCommandHandler) publish(ctx context.Context, ord *order.Order) {
	switch ord.Status() {
	case order.Accepted, order.Completed, order.Paid, order.Unpaid, order.Cancelled:
	default:
		return
	}

	event := ports.OrderStatusChanged{
		OrderID:    ord.ID(),
		Status:     ord.Status(),
		OccurredAt: time.Now().UTC(),
	}
	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		h.logger.Error("publish order status event",
			"order_id", ord.ID().String(),
			"status", ord.Status().String(),
			"error", err)
	}
}

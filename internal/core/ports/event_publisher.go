package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderStatusChanged is the integration event emitted when an order enters
// a customer-visible status.
type OrderStatusChanged struct {
	OrderID    kernel.UUID
	Status     order.Status
	OccurredAt time.Time
}

// EventPublisher publishes integration events to the outbound queue.
// Publishing is best effort: the status change is already committed when the
// event goes out, and a failed publish must not fail the command.
type EventPublisher interface {
	// PublishOrderStatusChanged enqueues an order status event.
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChanged) error
}

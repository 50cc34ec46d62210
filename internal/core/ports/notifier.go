package ports

import (
	"context"
)

// Notification is one message to a customer about their order.
type Notification struct {
	RecipientName  string
	RecipientEmail string
	Subject        string
	Body           string
}

// Notifier delivers customer notifications. Delivery is fire and forget
// from the caller's perspective; implementations may queue and retry.
type Notifier interface {
	// Notify hands the notification over for delivery.
	Notify(ctx context.Context, notification Notification) error
}

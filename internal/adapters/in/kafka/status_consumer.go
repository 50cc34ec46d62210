// Package kafka consumes order status events from the outbound queue and
// turns them into customer-facing notifications.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// orderStatusChangedMessage mirrors the publisher's wire format.
type orderStatusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// StatusConsumer reads order status events and hands a notification to the
// notifier for each one. Notifications go to the operations mailbox; orders
// carry phone contacts only.
type StatusConsumer struct {
	reader   *kafka.Reader
	notifier ports.Notifier
	opsName  string
	opsEmail string
	logger   *slog.Logger
}

// NewStatusConsumer creates a consumer on the given broker, topic and
// consumer group.
func NewStatusConsumer(
	broker, topic, group string,
	notifier ports.Notifier,
	opsName, opsEmail string,
	logger *slog.Logger,
) *StatusConsumer {
	return &StatusConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  []string{broker},
			GroupID:  group,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
			MaxWait:  time.Second,
		}),
		notifier: notifier,
		opsName:  opsName,
		opsEmail: opsEmail,
		logger:   logger.With("component", "status_consumer"),
	}
}

// Start consumes events until the context is cancelled. Messages that cannot
// be parsed are committed and skipped; notifier failures leave the message
// uncommitted so it is retried.
func (c *StatusConsumer) Start(ctx context.Context) error {
	c.logger.InfoContext(ctx, "Order status consumer started", "topic", c.reader.Config().Topic)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.ErrorContext(ctx, "Error fetching message", "error", err)
			continue
		}

		event, err := c.parseMessage(msg)
		if err != nil {
			c.logger.ErrorContext(ctx, "Error parsing message", "error", err)
			if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
				c.logger.ErrorContext(ctx, "Error committing message", "error", commitErr)
			}
			continue
		}

		if err := c.notifier.Notify(ctx, c.notification(event)); err != nil {
			c.logger.ErrorContext(ctx, "Error handing off notification",
				"orderId", event.OrderID, "error", err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.ErrorContext(ctx, "Error committing message", "error", err)
		}
	}
}

// Close closes the underlying reader.
func (c *StatusConsumer) Close() error {
	return c.reader.Close()
}

func (c *StatusConsumer) parseMessage(msg kafka.Message) (orderStatusChangedMessage, error) {
	var event orderStatusChangedMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return orderStatusChangedMessage{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return event, nil
}

func (c *StatusConsumer) notification(event orderStatusChangedMessage) ports.Notification {
	return ports.Notification{
		RecipientName:  c.opsName,
		RecipientEmail: c.opsEmail,
		Subject:        fmt.Sprintf("Order %s is now %s", event.OrderID, event.Status),
		Body: fmt.Sprintf(
			"<p>Order <b>%s</b> changed to status <b>%s</b> at %s.</p>",
			event.OrderID, event.Status, event.OccurredAt.Format(time.RFC3339)),
	}
}

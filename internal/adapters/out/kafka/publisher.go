// Package kafka publishes integration events to the outbound Kafka queue.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logistics/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// orderStatusChangedMessage is the wire format of an order status event.
type orderStatusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher implements ports.EventPublisher on top of a kafka-go writer.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing order status events to the given
// broker and topic.
func NewPublisher(broker, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
	}
}

// PublishOrderStatusChanged publishes one order status event. The order ID is
// used as the message key so events of one order keep their relative order.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	data, err := json.Marshal(orderStatusChangedMessage{
		OrderID:    event.OrderID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("order.status.changed")},
		},
		Time: event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to topic %s: %w", p.writer.Topic, err)
	}

	return nil
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

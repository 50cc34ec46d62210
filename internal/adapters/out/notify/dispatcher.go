package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"logistics/internal/core/ports"
)

// ErrDispatcherClosed is returned when a notification is handed to a
// dispatcher that has already been closed.
var ErrDispatcherClosed = errors.New("notification dispatcher is closed")

// Dispatcher queues notifications and delivers them through a backend from a
// background worker, keeping slow email round trips off the request path.
// Failed deliveries are logged and kept for the redelivery job to pick up.
//
// Dispatcher itself implements ports.Notifier, so command handlers stay
// unaware of the queueing.
type Dispatcher struct {
	backend     ports.Notifier
	queue       chan ports.Notification
	failures    []ports.Notification
	failuresMu  sync.Mutex
	logger      *slog.Logger
	sendTimeout time.Duration

	closeOnce sync.Once
	closed    chan struct{}
	done      chan struct{}
}

// NewDispatcher creates a dispatcher with the given queue capacity and starts
// its delivery worker.
func NewDispatcher(
	backend ports.Notifier,
	capacity int,
	sendTimeout time.Duration,
	logger *slog.Logger,
) *Dispatcher {
	d := &Dispatcher{
		backend:     backend,
		queue:       make(chan ports.Notification, capacity),
		logger:      logger.With("component", "notify_dispatcher"),
		sendTimeout: sendTimeout,
		closed:      make(chan struct{}),
		done:        make(chan struct{}),
	}

	go d.run()
	return d
}

// Notify hands a notification to the delivery worker. When the queue is full
// the notification goes straight to the redelivery set instead of blocking
// the caller.
func (d *Dispatcher) Notify(_ context.Context, notification ports.Notification) error {
	select {
	case <-d.closed:
		return ErrDispatcherClosed
	default:
	}

	select {
	case d.queue <- notification:
		return nil
	default:
		d.logger.Warn("notification queue full, keeping for redelivery",
			"recipient", notification.RecipientEmail)
		d.keepForRedelivery(notification)
		return nil
	}
}

// TakeFailed drains the notifications whose delivery failed, handing them to
// the redelivery job.
func (d *Dispatcher) TakeFailed() []ports.Notification {
	d.failuresMu.Lock()
	defer d.failuresMu.Unlock()

	failed := d.failures
	d.failures = nil
	return failed
}

// Close stops accepting notifications, delivers what is already queued and
// waits for the worker to finish. The queue channel is never closed, so a
// Notify racing Close cannot panic on the send.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.closed)
	})
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for {
		select {
		case notification := <-d.queue:
			d.deliver(notification)
		case <-d.closed:
			// Drain what was queued before the close signal.
			for {
				select {
				case notification := <-d.queue:
					d.deliver(notification)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(notification ports.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	err := d.backend.Notify(ctx, notification)
	cancel()

	if err != nil {
		d.logger.Error("notification delivery failed",
			"recipient", notification.RecipientEmail,
			"subject", notification.Subject,
			"error", err)
		d.keepForRedelivery(notification)
		return
	}

	d.logger.Info("notification delivered",
		"recipient", notification.RecipientEmail,
		"subject", notification.Subject)
}

func (d *Dispatcher) keepForRedelivery(notification ports.Notification) {
	d.failuresMu.Lock()
	defer d.failuresMu.Unlock()
	d.failures = append(d.failures, notification)
}

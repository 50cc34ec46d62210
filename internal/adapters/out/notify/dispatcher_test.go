package notify_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"logistics/internal/adapters/out/notify"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBackend collects delivered notifications and can be told to fail.
type recordingBackend struct {
	mu        sync.Mutex
	delivered []ports.Notification
	failWith  error
}

func (b *recordingBackend) Notify(_ context.Context, notification ports.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failWith != nil {
		return b.failWith
	}
	b.delivered = append(b.delivered, notification)
	return nil
}

func (b *recordingBackend) Delivered() []ports.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	delivered := make([]ports.Notification, len(b.delivered))
	copy(delivered, b.delivered)
	return delivered
}

func testNotification(subject string) ports.Notification {
	return ports.Notification{
		RecipientName:  "Nguyen Van A",
		RecipientEmail: "a.nguyen@example.com",
		Subject:        subject,
		Body:           "<p>Your order status changed.</p>",
	}
}

func TestDispatcher_DeliversQueuedNotifications(t *testing.T) {
	backend := &recordingBackend{}
	dispatcher := notify.NewDispatcher(backend, 10, time.Second, slog.New(slog.DiscardHandler))

	require.NoError(t, dispatcher.Notify(context.Background(), testNotification("order accepted")))
	require.NoError(t, dispatcher.Notify(context.Background(), testNotification("order completed")))

	dispatcher.Close()

	delivered := backend.Delivered()
	require.Len(t, delivered, 2)
	assert.Equal(t, "order accepted", delivered[0].Subject)
	assert.Equal(t, "order completed", delivered[1].Subject)
	assert.Empty(t, dispatcher.TakeFailed())
}

func TestDispatcher_KeepsFailedDeliveriesForRedelivery(t *testing.T) {
	backend := &recordingBackend{failWith: errors.New("smtp unavailable")}
	dispatcher := notify.NewDispatcher(backend, 10, time.Second, slog.New(slog.DiscardHandler))

	require.NoError(t, dispatcher.Notify(context.Background(), testNotification("order paid")))

	dispatcher.Close()

	failed := dispatcher.TakeFailed()
	require.Len(t, failed, 1)
	assert.Equal(t, "order paid", failed[0].Subject)

	assert.Empty(t, dispatcher.TakeFailed(), "TakeFailed drains the set")
}

func TestDispatcher_NotifyRacingClose_DoesNotPanic(t *testing.T) {
	backend := &recordingBackend{}
	dispatcher := notify.NewDispatcher(backend, 64, time.Second, slog.New(slog.DiscardHandler))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				if err := dispatcher.Notify(context.Background(), testNotification("order accepted")); err != nil {
					return
				}
			}
		}()
	}

	dispatcher.Close()
	wg.Wait()

	err := dispatcher.Notify(context.Background(), testNotification("order accepted"))
	assert.ErrorIs(t, err, notify.ErrDispatcherClosed)
}

func TestDispatcher_NotifyAfterClose_ReturnsError(t *testing.T) {
	backend := &recordingBackend{}
	dispatcher := notify.NewDispatcher(backend, 10, time.Second, slog.New(slog.DiscardHandler))
	dispatcher.Close()

	err := dispatcher.Notify(context.Background(), testNotification("order accepted"))
	assert.ErrorIs(t, err, notify.ErrDispatcherClosed)
}

package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/storefront-labs/storefront-service/internal/events"
)

type recordingHandler struct {
	mu   sync.Mutex
	seen []events.EventType
	err  error
}

func (h *recordingHandler) Handle(_ context.Context, event events.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, event.Type)
	return h.err
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.seen)
}

func TestNotificationWorker_DeliversPublishedEvents(t *testing.T) {
	handler := &recordingHandler{}
	w := NewNotificationWorker(handler, nil, 8)
	dispatcher := events.NewInMemoryDispatcher()
	w.Subscribe(dispatcher)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	now := time.Now()
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventUserRegistered, "u-1", "u-1", now, nil)))
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventStoreCreated, "u-1", "s-1", now, nil)))

	assert.Eventually(t, func() bool { return handler.count() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	w.Wait()
	assert.Equal(t, []events.EventType{events.EventUserRegistered, events.EventStoreCreated}, handler.seen)
}

func TestNotificationWorker_DropsWhenFull(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	handler := &recordingHandler{}
	w := NewNotificationWorker(handler, zap.New(core), 1)
	dispatcher := events.NewInMemoryDispatcher()
	w.Subscribe(dispatcher)

	ctx := context.Background()
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventProductCreated, "u-1", "p-1", time.Now(), nil)))
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventProductCreated, "u-1", "p-2", time.Now(), nil)))

	assert.Equal(t, 1, logs.FilterMessage("notification queue full; dropping event").Len())
}

func TestNotificationWorker_DrainsOnShutdown(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	handler := &recordingHandler{err: errors.New("webhook timeout")}
	w := NewNotificationWorker(handler, zap.New(core), 4)
	dispatcher := events.NewInMemoryDispatcher()
	w.Subscribe(dispatcher)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventTokenInvalidated, "u-1", "u-1", time.Now(), nil)))
	cancel()

	w.Start(ctx)
	w.Wait()

	assert.Equal(t, 1, handler.count())
	assert.Equal(t, 1, logs.FilterMessage("notification delivery failed").Len())
}

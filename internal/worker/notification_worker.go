package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/storefront-labs/storefront-service/internal/events"
)

// Handler processes one queued event.
type Handler interface {
	Handle(ctx context.Context, event events.Event) error
}

// NotificationWorker moves notification delivery off the request path. Events
// are queued by a dispatcher subscription and drained by a single goroutine.
type NotificationWorker struct {
	handler Handler
	queue   chan events.Event
	logger  *zap.Logger
	wg      sync.WaitGroup
}

// NewNotificationWorker creates a worker with a queue of the given size.
func NewNotificationWorker(handler Handler, logger *zap.Logger, buffer int) *NotificationWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if buffer <= 0 {
		buffer = 64
	}
	return &NotificationWorker{handler: handler, queue: make(chan events.Event, buffer), logger: logger}
}

// Subscribe queues every published event type for delivery.
func (w *NotificationWorker) Subscribe(dispatcher events.Dispatcher) {
	for _, t := range events.AllTypes() {
		dispatcher.Subscribe(t, w.enqueue)
	}
}

// enqueue never blocks the publisher. When the queue is full the event is
// dropped and logged.
func (w *NotificationWorker) enqueue(_ context.Context, event events.Event) error {
	select {
	case w.queue <- event:
	default:
		w.logger.Warn("notification queue full; dropping event",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID))
	}
	return nil
}

// Start drains the queue until ctx is cancelled. Queued events left at
// cancellation are delivered before the goroutine exits.
func (w *NotificationWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case event := <-w.queue:
				w.deliver(ctx, event)
			case <-ctx.Done():
				w.drain()
				return
			}
		}
	}()
}

func (w *NotificationWorker) drain() {
	for {
		select {
		case event := <-w.queue:
			w.deliver(context.Background(), event)
		default:
			return
		}
	}
}

func (w *NotificationWorker) deliver(ctx context.Context, event events.Event) {
	if err := w.handler.Handle(ctx, event); err != nil {
		w.logger.Warn("notification delivery failed",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
			zap.Error(err))
	}
}

// Wait blocks until the drain goroutine has exited.
func (w *NotificationWorker) Wait() {
	w.wg.Wait()
}

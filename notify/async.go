package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Async dispatches events to the wrapped notifier in background goroutines,
// so slow or failing channels never add latency to the processing loop.
// Delivery errors are logged and dropped.
type Async struct {
	inner  Notifier
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewAsync(inner Notifier, logger *zap.Logger) *Async {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Async{inner: inner, logger: logger}
}

func (a *Async) Notify(ctx context.Context, ev Event) error {
	a.wg.Add(1)
	// Detach from the caller's cancellation: the pipeline may finish before
	// the notification is delivered.
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer a.wg.Done()
		if err := a.inner.Notify(ctx, ev); err != nil {
			a.logger.Warn("notification delivery failed",
				zap.String("kind", string(ev.Kind)),
				zap.String("priority", string(ev.Priority)),
				zap.Error(err),
			)
		}
	}()
	return nil
}

// Wait blocks until all in-flight notifications are delivered or failed.
// Used on shutdown and in tests.
func (a *Async) Wait() {
	a.wg.Wait()
}

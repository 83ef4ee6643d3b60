package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/knnakr/careeragent/notify"
)

type recorder struct {
	mu     sync.Mutex
	events []notify.Event
	err    error
}

func (r *recorder) Notify(_ context.Context, ev notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestMulti_FansOutToAllSinks(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := notify.Multi(a, b)

	ev := notify.Event{Kind: notify.KindNewMessage, Priority: notify.PriorityHigh, Subject: "s", Body: "b"}
	if err := m.Notify(context.Background(), ev); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if a.count() != 1 || b.count() != 1 {
		t.Errorf("delivery counts = %d/%d, want 1/1", a.count(), b.count())
	}
}

func TestMulti_FailureDoesNotSkipLaterSinks(t *testing.T) {
	bad := &recorder{err: errors.New("sink down")}
	good := &recorder{}
	m := notify.Multi(bad, good)

	err := m.Notify(context.Background(), notify.Event{Kind: notify.KindResponseSent})
	if err == nil {
		t.Fatal("expected joined error")
	}
	if good.count() != 1 {
		t.Error("later sink should still be attempted")
	}
}

func TestMulti_JoinsAllErrors(t *testing.T) {
	e1, e2 := errors.New("first"), errors.New("second")
	m := notify.Multi(&recorder{err: e1}, &recorder{err: e2})

	err := m.Notify(context.Background(), notify.Event{})
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Errorf("joined error = %v, want both causes", err)
	}
}

func TestAsync_DeliversInBackground(t *testing.T) {
	rec := &recorder{}
	async := notify.NewAsync(rec, zap.NewNop())

	if err := async.Notify(context.Background(), notify.Event{Kind: notify.KindNewMessage}); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	async.Wait()

	if rec.count() != 1 {
		t.Errorf("delivered = %d, want 1", rec.count())
	}
}

func TestAsync_SurvivesCallerCancellation(t *testing.T) {
	block := make(chan struct{})
	var got context.Context
	sink := notifierFunc(func(ctx context.Context, _ notify.Event) error {
		got = ctx
		<-block
		return nil
	})
	async := notify.NewAsync(sink, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	if err := async.Notify(ctx, notify.Event{}); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	cancel()
	close(block)
	async.Wait()

	select {
	case <-got.Done():
		t.Error("delivery context should be detached from the caller's cancellation")
	default:
	}
}

func TestAsync_ErrorIsSwallowed(t *testing.T) {
	async := notify.NewAsync(&recorder{err: errors.New("down")}, zap.NewNop())

	if err := async.Notify(context.Background(), notify.Event{}); err != nil {
		t.Fatalf("Async.Notify should never return an error, got %v", err)
	}

	done := make(chan struct{})
	go func() {
		async.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return")
	}
}

func TestNoop(t *testing.T) {
	if err := (notify.Noop{}).Notify(context.Background(), notify.Event{}); err != nil {
		t.Fatalf("Noop.Notify: %v", err)
	}
}

type notifierFunc func(context.Context, notify.Event) error

func (f notifierFunc) Notify(ctx context.Context, ev notify.Event) error { return f(ctx, ev) }

package backend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu    sync.Mutex
	calls map[Kind]int
	err   error
}

func (f *fakeSource) Fetch(ctx context.Context, req Request) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[Kind]int)
	}
	f.calls[req.Kind]++
	if f.err != nil {
		return nil, f.err
	}
	return req.ID, nil
}

func next(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events closed early")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return Event{}
}

func TestWatcherPollsImmediately(t *testing.T) {
	w := NewWatcher(&fakeSource{}, time.Hour, KindDownloads)
	defer w.Stop()
	evt := next(t, w)
	if evt.Kind != KindDownloads || evt.Triggered || evt.Err != nil {
		t.Fatalf("unexpected event %+v", evt)
	}
}

func TestWatcherTrigger(t *testing.T) {
	w := NewWatcher(&fakeSource{}, time.Hour)
	defer w.Stop()
	if !w.Trigger(Request{Kind: KindSeriesHistory, ID: 42}) {
		t.Fatalf("expected trigger to be queued")
	}
	evt := next(t, w)
	if !evt.Triggered || evt.Kind != KindSeriesHistory || evt.Data != int64(42) {
		t.Fatalf("unexpected event %+v", evt)
	}
}

func TestWatcherReportsErrors(t *testing.T) {
	boom := errors.New("boom")
	w := NewWatcher(&fakeSource{err: boom}, time.Hour, KindSeries)
	defer w.Stop()
	if evt := next(t, w); !errors.Is(evt.Err, boom) {
		t.Fatalf("expected boom, got %v", evt.Err)
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	w := NewWatcher(&fakeSource{}, time.Hour, KindSeries)
	next(t, w)
	w.Stop()
	if err := w.Wait(); err != nil {
		t.Fatalf("unexpected wait error: %v", err)
	}
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected events channel closed")
	}
	if w.Trigger(Request{Kind: KindSeries}) {
		t.Fatalf("expected trigger refused after stop")
	}
}

func TestThrottleHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if err := th.wait(ctx); err != nil {
		t.Fatalf("first wait should pass, got %v", err)
	}
	cancel()
	if err := th.wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestKindNames(t *testing.T) {
	for k := KindSeries; k <= KindUpdates; k++ {
		if k.String() == "unknown" {
			t.Fatalf("kind %d has no name", int(k))
		}
	}
}

// Package backend fetches server data off the UI goroutine. A Watcher polls
// a Source on an interval and on demand, publishing every result as an
// Event for the update loop to apply.
package backend

import (
	"context"
	"errors"
	"time"

	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/models"
	"golang.org/x/sync/errgroup"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindSeries Kind = iota
	KindSeriesHistory
	KindProfiles
	KindDownloads
	KindBlocklist
	KindHistory
	KindRootFolders
	KindIndexers
	KindIndexerSettings
	KindTasks
	KindQueuedEvents
	KindLogs
	KindUpdates
)

var kindNames = map[Kind]string{
	KindSeries:          "series",
	KindSeriesHistory:   "series-history",
	KindProfiles:        "profiles",
	KindDownloads:       "downloads",
	KindBlocklist:       "blocklist",
	KindHistory:         "history",
	KindRootFolders:     "root-folders",
	KindIndexers:        "indexers",
	KindIndexerSettings: "indexer-settings",
	KindTasks:           "tasks",
	KindQueuedEvents:    "queued-events",
	KindLogs:            "logs",
	KindUpdates:         "updates",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// DefaultInterval is used when NewWatcher is given no interval.
const DefaultInterval = 5 * time.Second

// Request names the data to fetch. ID scopes per-row kinds such as the
// history of one series.
type Request struct {
	Kind Kind
	ID   int64
}

// Profiles bundles the quality and language profiles offered by the edit
// series form.
type Profiles struct {
	Quality  []models.Profile
	Language []models.Profile
}

// Source fetches one kind of data. The returned value for each kind is:
// []models.Series, []models.HistoryItem, Profiles, []models.Download,
// []models.BlocklistItem, []models.HistoryItem, []models.RootFolder,
// []models.Indexer, models.IndexerSettings, []models.Task,
// []models.QueuedEvent, []models.LogEntry and []models.Update.
type Source interface {
	Fetch(ctx context.Context, req Request) (interface{}, error)
}

// Event conveys updated data or an error from a backend fetch. Triggered
// is set for fetches requested through Trigger.
type Event struct {
	Request
	Data      interface{}
	Err       error
	Triggered bool
}

// Watcher polls a Source at a fixed interval and publishes events.
type Watcher struct {
	src      Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events   chan Event
	triggers chan Request
	group    *errgroup.Group
}

// NewWatcher creates a watcher polling the given kinds every interval.
// Other kinds are only fetched through Trigger.
func NewWatcher(src Source, interval time.Duration, kinds ...Kind) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)
	w := &Watcher{
		src:      src,
		interval: interval,
		ctx:      gctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		triggers: make(chan Request, 16),
		group:    group,
	}

	for _, kind := range kinds {
		kind := kind
		throttle := newThrottle(250 * time.Millisecond)
		group.Go(func() error {
			return w.poll(Request{Kind: kind}, throttle)
		})
	}
	group.Go(w.serveTriggers)

	go func() {
		_ = group.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events. It is closed once every
// poller has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Trigger asks for an immediate fetch of req. It reports false when the
// request queue is full or the watcher is stopped.
func (w *Watcher) Trigger(req Request) bool {
	if w.ctx.Err() != nil {
		return false
	}
	select {
	case w.triggers <- req:
		events.Backend.Trigger(req.Kind.String())
		return true
	default:
		return false
	}
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() error {
	err := w.group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (w *Watcher) emit(evt Event) error {
	if evt.Err != nil {
		events.Backend.Error(evt.Kind.String(), evt.Err)
	}
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	case w.events <- evt:
		return nil
	}
}

func (w *Watcher) fetch(req Request) Event {
	data, err := w.src.Fetch(w.ctx, req)
	return Event{Request: req, Data: data, Err: err}
}

func (w *Watcher) serveTriggers() error {
	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case req := <-w.triggers:
			evt := w.fetch(req)
			evt.Triggered = true
			if err := w.emit(evt); err != nil {
				return err
			}
		}
	}
}

func (w *Watcher) poll(req Request, throttle *throttle) error {
	if err := w.emit(w.fetch(req)); err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-ticker.C:
			if err := throttle.wait(w.ctx); err != nil {
				return err
			}
			if err := w.emit(w.fetch(req)); err != nil {
				return err
			}
		}
	}
}

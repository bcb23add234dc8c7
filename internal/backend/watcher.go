package backend

import (
	"context"
	"sync"
	"time"

	"github.com/fieldpad/fieldpad/internal/page"
)

// Event conveys a refreshed page snapshot or an error from a backend poll.
type Event struct {
	Page page.Page
	Err  error
}

// FetchFunc retrieves the current page document from the backend.
type FetchFunc func(ctx context.Context) (page.Page, error)

// Watcher polls the backend at a fixed interval and publishes events.
type Watcher struct {
	fetch    FetchFunc
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that re-fetches the page every interval.
func NewWatcher(fetch FetchFunc, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fetch:    fetch,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) (page.Page, error) {
		throttle.wait()
		return w.fetch(ctx)
	})
}

func (w *Watcher) poll(fetch FetchFunc) {
	defer w.wg.Done()

	emit := func() bool {
		snapshot, err := fetch(w.ctx)
		evt := Event{Page: snapshot, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fieldpad/fieldpad/internal/page"
)

func TestWatcherEmitsSnapshots(t *testing.T) {
	fetch := func(ctx context.Context) (page.Page, error) {
		return page.Page{Title: "Personnel"}, nil
	}
	w := NewWatcher(fetch, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected error: %v", evt.Err)
		}
		if evt.Page.Title != "Personnel" {
			t.Fatalf("unexpected snapshot: %#v", evt.Page)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for event")
	}
}

func TestWatcherPropagatesFetchErrors(t *testing.T) {
	boom := errors.New("backend down")
	fetch := func(ctx context.Context) (page.Page, error) {
		return page.Page{}, boom
	}
	w := NewWatcher(fetch, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	select {
	case evt := <-w.Events():
		if !errors.Is(evt.Err, boom) {
			t.Fatalf("expected fetch error, got %v", evt.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for event")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	fetch := func(ctx context.Context) (page.Page, error) {
		return page.Page{}, nil
	}
	w := NewWatcher(fetch, 10*time.Millisecond)
	w.Stop()
	w.Wait()
	for range w.Events() {
	}
}

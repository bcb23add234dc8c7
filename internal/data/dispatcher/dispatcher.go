package dispatcher

import (
	"github.com/fieldpad/fieldpad/internal/backend"
	"github.com/fieldpad/fieldpad/internal/logging/events"
	"github.com/fieldpad/fieldpad/internal/state"
)

type Result struct {
	PageUpdated bool
}

type Dispatcher struct {
	pages state.PageStore
}

func New(pages state.PageStore) *Dispatcher {
	return &Dispatcher{pages: pages}
}

// Handle folds one backend event into the page store. The field named by
// active is left untouched so an open edit session survives refreshes.
func (d *Dispatcher) Handle(evt backend.Event, active string) Result {
	var res Result
	if evt.Err != nil {
		events.Page.RefreshError(evt.Err)
		return res
	}
	if d.pages.Apply(evt.Page, active) {
		res.PageUpdated = true
	}
	events.Page.Refreshed(len(evt.Page.Nodes), res.PageUpdated)
	return res
}

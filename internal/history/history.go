// Package history loads the effective-dated version timeline of a record.
// The timeline is always fetched fresh when opened, so edits made since
// the list was loaded are visible.
package history

import (
	"context"
	"sync"

	"github.com/freshcms/payadm/internal/model"
)

// Source fetches version timelines. *client.HTTPClient satisfies it.
type Source interface {
	Histories(ctx context.Context, component model.Component, id string) ([]model.HistoryItem, error)
}

// Viewer drives the tracking-history panel of one screen. Opening a
// timeline cancels any fetch still in flight, so a fast second click on
// another row never loses to a slow first one. It is safe for concurrent
// use.
type Viewer struct {
	src Source

	mu        sync.Mutex
	cancel    context.CancelFunc
	gen       int
	component model.Component
	id        string
	items     []model.HistoryItem
}

// NewViewer creates a viewer backed by src.
func NewViewer(src Source) *Viewer {
	return &Viewer{src: src}
}

// Open fetches the timeline of one record, replacing the current one.
// Superseded fetches return their error (usually context.Canceled)
// without touching the viewer.
func (v *Viewer) Open(ctx context.Context, component model.Component, id string) ([]model.HistoryItem, error) {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	items, err := v.src.Histories(ctx, component, id)
	cancel()

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	v.component = component
	v.id = id
	v.items = items
	return items, nil
}

// Refresh reloads the currently open timeline, a no-op when none is open.
func (v *Viewer) Refresh(ctx context.Context) ([]model.HistoryItem, error) {
	v.mu.Lock()
	component, id := v.component, v.id
	v.mu.Unlock()
	if id == "" {
		return nil, nil
	}
	return v.Open(ctx, component, id)
}

// Items returns the last loaded timeline.
func (v *Viewer) Items() []model.HistoryItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.items
}

// Close cancels any fetch in flight and clears the viewer.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen++
	v.component = ""
	v.id = ""
	v.items = nil
}

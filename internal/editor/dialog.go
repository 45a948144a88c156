// Package editor implements the editing workflows shared by the payadm
// screens: modal dialog lifecycles, the effective-dated change-insert
// decision, and the detail-row editor used for input values, formula
// results, balance feeds and link values.
package editor

import (
	"errors"
	"sync"
)

// ErrDialogBusy is returned by Open while another dialog session is still
// unresolved. Only one dialog is on screen at a time; the second opener
// is rejected rather than queued.
var ErrDialogBusy = errors.New("dialog already open")

// Result is the outcome of one dialog session. OK is false when the user
// cancelled.
type Result[R any] struct {
	Value R
	OK    bool
}

// Dialog is an asynchronous modal controller parameterised by the payload
// shown to the user (P) and the value the dialog produces (R). Open hands
// out a channel that receives exactly one Result when the session ends.
// It is safe for concurrent use.
type Dialog[P, R any] struct {
	mu    sync.Mutex
	open  bool
	param P
	done  chan Result[R]
}

// Open starts a dialog session with the given payload. It fails with
// ErrDialogBusy when a session is already open.
func (d *Dialog[P, R]) Open(param P) (<-chan Result[R], error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.open {
		return nil, ErrDialogBusy
	}
	d.open = true
	d.param = param
	d.done = make(chan Result[R], 1)
	return d.done, nil
}

// IsOpen reports whether a session is in progress.
func (d *Dialog[P, R]) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Param returns the payload of the current session, the zero value when
// no session is open.
func (d *Dialog[P, R]) Param() P {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.param
}

// Close resolves the session with a value. Closing an idle dialog is a
// no-op.
func (d *Dialog[P, R]) Close(value R) {
	d.resolve(Result[R]{Value: value, OK: true})
}

// Cancel resolves the session as cancelled. Cancelling an idle dialog is
// a no-op.
func (d *Dialog[P, R]) Cancel() {
	d.resolve(Result[R]{})
}

func (d *Dialog[P, R]) resolve(r Result[R]) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return
	}
	d.open = false
	var zero P
	d.param = zero
	d.done <- r
	d.done = nil
}

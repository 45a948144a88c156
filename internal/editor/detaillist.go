package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/idgen"
	"github.com/freshcms/payadm/internal/model"
)

// ErrDuplicateDetail rejects a detail row whose key collides with a
// sibling.
var ErrDuplicateDetail = errors.New("duplicate detail row")

// ErrEditCancelled reports that the user abandoned a save at the
// change-insert prompt.
var ErrEditCancelled = errors.New("edit cancelled")

// ErrProvisionalRow rejects mutating a row that still carries a
// client-side id after its parent was saved. The row only exists on the
// server under an id we have not seen yet; reload the parent first.
var ErrProvisionalRow = errors.New("row has no server id yet")

// DetailOps is the persistence surface of one detail-row kind. Insert
// returns the server-assigned id.
type DetailOps[T any] struct {
	Insert func(ctx context.Context, item T) (string, error)
	Update func(ctx context.Context, id string, item T, opts *client.UpdateOptions) (*client.UpdateResponse, error)
	Delete func(ctx context.Context, id string) error
}

// DetailList edits the child rows of a record under edit: the input
// values of an element, the results of a formula, the feeds of a balance,
// the values of a link. While the parent is unsaved (staged), rows live
// only in memory under provisional ids; once the parent exists, row
// mutations hit the API immediately and effective-dated edits go through
// the change-insert decision.
type DetailList[T any] struct {
	ops       DetailOps[T]
	id        func(T) string
	setID     func(*T, string)
	key       func(T) string
	effective func(T) model.Date
	confirmer Confirmer
	staged    bool
	rows      []T

	// OnHistoryChange runs after a saved edit created a new
	// effective-dated version, so the parent screen can reload its
	// timeline.
	OnHistoryChange func()
}

// DetailConfig wires a DetailList to its row type.
type DetailConfig[T any] struct {
	Ops DetailOps[T]
	// ID extracts the row id; SetID stamps a new one.
	ID    func(T) string
	SetID func(*T, string)
	// Key extracts the uniqueness key (usually the row's name).
	Key func(T) string
	// Effective extracts the row's effective start.
	Effective func(T) model.Date
	Confirmer Confirmer
	// Staged marks the parent as not yet persisted: mutations stay
	// local.
	Staged bool
	Rows   []T
}

// NewDetailList creates a detail editor over the given rows.
func NewDetailList[T any](cfg DetailConfig[T]) *DetailList[T] {
	return &DetailList[T]{
		ops:       cfg.Ops,
		id:        cfg.ID,
		setID:     cfg.SetID,
		key:       cfg.Key,
		effective: cfg.Effective,
		confirmer: cfg.Confirmer,
		staged:    cfg.Staged,
		rows:      append([]T(nil), cfg.Rows...),
	}
}

// Rows returns the current rows.
func (l *DetailList[T]) Rows() []T { return l.rows }

// Get finds a row by id.
func (l *DetailList[T]) Get(id string) (T, bool) {
	for _, r := range l.rows {
		if l.id(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Add appends a row. Staged parents keep the row local under a
// provisional id; saved parents insert through the API and adopt the
// server id.
func (l *DetailList[T]) Add(ctx context.Context, item T) error {
	if err := l.checkDuplicate(item, ""); err != nil {
		return err
	}
	if l.staged {
		pid, err := idgen.Provisional()
		if err != nil {
			return fmt.Errorf("assigning provisional id: %w", err)
		}
		l.setID(&item, pid)
		l.rows = append(l.rows, item)
		return nil
	}
	newID, err := l.ops.Insert(ctx, item)
	if err != nil {
		return err
	}
	l.setID(&item, newID)
	l.rows = append(l.rows, item)
	return nil
}

// Edit replaces the row with the given id. Saved rows go through the
// change-insert decision against their current effective date; a declined
// prompt returns ErrEditCancelled and leaves the row untouched.
func (l *DetailList[T]) Edit(ctx context.Context, id string, item T) error {
	current, ok := l.Get(id)
	if !ok {
		return fmt.Errorf("no detail row %q", id)
	}
	if err := l.checkDuplicate(item, id); err != nil {
		return err
	}
	l.setID(&item, id)

	if l.staged {
		l.replace(id, item)
		return nil
	}
	if idgen.IsProvisional(id) {
		return fmt.Errorf("%w: %s", ErrProvisionalRow, id)
	}

	existing := l.effective(current)
	decision, err := Decide(ctx, l.confirmer, existing, l.effective(item))
	if err != nil {
		return err
	}
	if !decision.Proceed {
		return ErrEditCancelled
	}
	resp, err := l.ops.Update(ctx, id, item, &client.UpdateOptions{
		Mode:      decision.Mode,
		Effective: existing,
	})
	if err != nil {
		return err
	}
	l.replace(id, item)
	if resp != nil && resp.NewHistory.Bool() && l.OnHistoryChange != nil {
		l.OnHistoryChange()
	}
	return nil
}

// Delete removes the row with the given id. While the parent is staged
// rows only exist locally and never reach the API.
func (l *DetailList[T]) Delete(ctx context.Context, id string) error {
	if _, ok := l.Get(id); !ok {
		return fmt.Errorf("no detail row %q", id)
	}
	if l.staged {
		l.remove(id)
		return nil
	}
	if idgen.IsProvisional(id) {
		return fmt.Errorf("%w: %s", ErrProvisionalRow, id)
	}
	if err := l.ops.Delete(ctx, id); err != nil {
		return err
	}
	l.remove(id)
	return nil
}

// MarkSaved switches a staged list to API-backed mode after its parent
// was persisted. The rows keep their provisional ids until the parent is
// reloaded from the server; until then they cannot be edited or deleted.
func (l *DetailList[T]) MarkSaved() { l.staged = false }

func (l *DetailList[T]) checkDuplicate(item T, selfID string) error {
	if l.key == nil {
		return nil
	}
	k := l.key(item)
	if k == "" {
		return nil
	}
	for _, r := range l.rows {
		if selfID != "" && l.id(r) == selfID {
			continue
		}
		if l.key(r) == k {
			return fmt.Errorf("%w: %s", ErrDuplicateDetail, k)
		}
	}
	return nil
}

func (l *DetailList[T]) replace(id string, item T) {
	for i, r := range l.rows {
		if l.id(r) == id {
			l.rows[i] = item
			return
		}
	}
}

func (l *DetailList[T]) remove(id string) {
	for i, r := range l.rows {
		if l.id(r) == id {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			return
		}
	}
}

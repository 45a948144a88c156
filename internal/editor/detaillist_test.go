package editor

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/idgen"
	"github.com/freshcms/payadm/internal/model"
)

type detail struct {
	ID        string
	Name      string
	Effective model.Date
}

// fakeOps records mutations and hands out sequential ids.
type fakeOps struct {
	inserts    []detail
	updates    []client.UpdateOptions
	deletes    []string
	newHistory bool
	nextID     int
}

func (f *fakeOps) ops() DetailOps[detail] {
	return DetailOps[detail]{
		Insert: func(_ context.Context, item detail) (string, error) {
			f.inserts = append(f.inserts, item)
			f.nextID++
			return strconv.Itoa(f.nextID), nil
		},
		Update: func(_ context.Context, _ string, _ detail, opts *client.UpdateOptions) (*client.UpdateResponse, error) {
			f.updates = append(f.updates, *opts)
			return &client.UpdateResponse{Count: 1, NewHistory: model.Flag(f.newHistory)}, nil
		},
		Delete: func(_ context.Context, id string) error {
			f.deletes = append(f.deletes, id)
			return nil
		},
	}
}

func newList(f *fakeOps, staged bool, confirmer Confirmer, rows ...detail) *DetailList[detail] {
	return NewDetailList(DetailConfig[detail]{
		Ops:       f.ops(),
		ID:        func(d detail) string { return d.ID },
		SetID:     func(d *detail, id string) { d.ID = id },
		Key:       func(d detail) string { return d.Name },
		Effective: func(d detail) model.Date { return d.Effective },
		Confirmer: confirmer,
		Staged:    staged,
		Rows:      rows,
	})
}

func TestDetailListStagedAdd(t *testing.T) {
	f := &fakeOps{}
	l := newList(f, true, nil)

	if err := l.Add(context.Background(), detail{Name: "Amount"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(f.inserts) != 0 {
		t.Errorf("staged add hit the API")
	}
	rows := l.Rows()
	if len(rows) != 1 || !idgen.IsProvisional(rows[0].ID) {
		t.Errorf("rows = %+v, want one provisional row", rows)
	}
}

func TestDetailListSavedAddAdoptsServerID(t *testing.T) {
	f := &fakeOps{}
	l := newList(f, false, nil)

	if err := l.Add(context.Background(), detail{Name: "Amount"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(f.inserts) != 1 {
		t.Fatalf("inserts = %d", len(f.inserts))
	}
	if got := l.Rows()[0].ID; got != "1" {
		t.Errorf("ID = %q, want server id 1", got)
	}
}

func TestDetailListDuplicateName(t *testing.T) {
	f := &fakeOps{}
	l := newList(f, true, nil)
	ctx := context.Background()

	if err := l.Add(ctx, detail{Name: "Amount"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := l.Add(ctx, detail{Name: "Amount"}); !errors.Is(err, ErrDuplicateDetail) {
		t.Errorf("duplicate add: err = %v", err)
	}

	// Editing a row to its own name is not a collision.
	id := l.Rows()[0].ID
	if err := l.Edit(ctx, id, detail{Name: "Amount"}); err != nil {
		t.Errorf("self-rename: %v", err)
	}
}

func TestDetailListEditCorrection(t *testing.T) {
	f := &fakeOps{}
	eff := model.NewDate(2025, 1, 1)
	l := newList(f, false, nil, detail{ID: "7", Name: "Amount", Effective: eff})

	// Same effective date: no prompt, plain correction carrying the
	// existing version date.
	err := l.Edit(context.Background(), "7", detail{Name: "Rate", Effective: eff})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if len(f.updates) != 1 {
		t.Fatalf("updates = %d", len(f.updates))
	}
	opts := f.updates[0]
	if opts.Mode != "" {
		t.Errorf("Mode = %q, want none", opts.Mode)
	}
	if !opts.Effective.Equal(eff.Time) {
		t.Errorf("Effective = %v, want existing version date", opts.Effective)
	}
	if l.Rows()[0].Name != "Rate" {
		t.Errorf("row not updated locally")
	}
}

func TestDetailListEditChangeInsert(t *testing.T) {
	f := &fakeOps{newHistory: true}
	prompted := false
	confirmer := ConfirmerFunc(func(_ context.Context, existing, candidate model.Date) (Decision, error) {
		prompted = true
		if !candidate.After(existing) {
			t.Errorf("prompt for existing=%v candidate=%v", existing, candidate)
		}
		return Decision{Proceed: true, Mode: model.ModeChangeInsert}, nil
	})

	oldEff := model.NewDate(2025, 1, 1)
	l := newList(f, false, confirmer, detail{ID: "7", Name: "Amount", Effective: oldEff})
	historyReloaded := false
	l.OnHistoryChange = func() { historyReloaded = true }

	err := l.Edit(context.Background(), "7", detail{Name: "Amount", Effective: model.NewDate(2026, 3, 1)})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if !prompted {
		t.Fatal("later effective date did not prompt")
	}
	opts := f.updates[0]
	if opts.Mode != model.ModeChangeInsert {
		t.Errorf("Mode = %q", opts.Mode)
	}
	if !opts.Effective.Equal(oldEff.Time) {
		t.Errorf("Effective = %v, want the old version date, not the new one", opts.Effective)
	}
	if !historyReloaded {
		t.Errorf("new history did not trigger a reload")
	}
}

func TestDetailListEditDeclined(t *testing.T) {
	f := &fakeOps{}
	confirmer := ConfirmerFunc(func(context.Context, model.Date, model.Date) (Decision, error) {
		return Decision{}, nil
	})
	l := newList(f, false, confirmer, detail{ID: "7", Name: "Amount", Effective: model.NewDate(2025, 1, 1)})

	err := l.Edit(context.Background(), "7", detail{Name: "Amount", Effective: model.NewDate(2026, 1, 1)})
	if !errors.Is(err, ErrEditCancelled) {
		t.Fatalf("err = %v, want ErrEditCancelled", err)
	}
	if len(f.updates) != 0 {
		t.Errorf("declined edit reached the API")
	}
	if l.Rows()[0].Effective.Year() != 2025 {
		t.Errorf("declined edit changed the row")
	}
}

func TestDetailListDelete(t *testing.T) {
	f := &fakeOps{}
	l := newList(f, false, nil, detail{ID: "7", Name: "Amount"})
	ctx := context.Background()

	if err := l.Delete(ctx, "7"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(f.deletes) != 1 || f.deletes[0] != "7" {
		t.Errorf("deletes = %v", f.deletes)
	}
	if len(l.Rows()) != 0 {
		t.Errorf("rows = %+v", l.Rows())
	}

	if err := l.Delete(ctx, "7"); err == nil {
		t.Errorf("deleting a missing row succeeded")
	}
}

func TestDetailListStagedDeleteStaysLocal(t *testing.T) {
	f := &fakeOps{}
	l := newList(f, true, nil)
	ctx := context.Background()

	if err := l.Add(ctx, detail{Name: "Rate"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := l.Delete(ctx, l.Rows()[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(f.deletes) != 0 {
		t.Errorf("staged delete hit the API")
	}
	if len(l.Rows()) != 0 {
		t.Errorf("rows = %+v", l.Rows())
	}
}

func TestDetailListProvisionalRowLockedAfterSave(t *testing.T) {
	f := &fakeOps{}
	l := newList(f, true, nil)
	ctx := context.Background()

	if err := l.Add(ctx, detail{Name: "Amount"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	pid := l.Rows()[0].ID
	l.MarkSaved()

	if err := l.Delete(ctx, pid); !errors.Is(err, ErrProvisionalRow) {
		t.Errorf("Delete: err = %v, want ErrProvisionalRow", err)
	}
	if err := l.Edit(ctx, pid, detail{Name: "Rate"}); !errors.Is(err, ErrProvisionalRow) {
		t.Errorf("Edit: err = %v, want ErrProvisionalRow", err)
	}
	if len(f.deletes) != 0 || len(f.updates) != 0 {
		t.Errorf("locked row reached the API")
	}
	if got := l.Rows()[0].Name; got != "Amount" {
		t.Errorf("locked row changed locally to %q", got)
	}
}

package main

import (
	"context"
	"os"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/editor"
	"github.com/freshcms/payadm/internal/model"
	"github.com/freshcms/payadm/internal/ui"
)

// terminalConfirmer answers the change-insert prompt on the terminal,
// nil when stdin is not a tty so saves default to corrections.
func terminalConfirmer() editor.Confirmer {
	if !ui.IsInteractive() {
		return nil
	}
	return &ui.TerminalConfirmer{In: os.Stdin, Out: os.Stderr}
}

// decideUpdate resolves the change-insert question for an update moving a
// record's effective start from existing to candidate. The second return
// is false when the user cancelled. Non-interactive runs default to a
// correction.
func decideUpdate(ctx context.Context, existing, candidate model.Date) (*client.UpdateOptions, bool, error) {
	d, err := editor.Decide(ctx, terminalConfirmer(), existing, candidate)
	if err != nil {
		return nil, false, err
	}
	if !d.Proceed {
		return nil, false, nil
	}
	return &client.UpdateOptions{Mode: d.Mode, Effective: existing}, true, nil
}

// childResponses captures the raw API responses a DetailList drives, so
// the commands can report counts and new-version flags afterwards.
type childResponses struct {
	inserted *client.InsertResponse
	updated  *client.UpdateResponse
	deleted  *client.DeleteResponse
}

// childDetailOps adapts the client's child-row endpoints to the detail
// editor, recording each response in rec.
func childDetailOps[T any](
	rec *childResponses,
	insert func(context.Context, *T) (*client.InsertResponse, error),
	update func(context.Context, string, *T, *client.UpdateOptions) (*client.UpdateResponse, error),
	del func(context.Context, string) (*client.DeleteResponse, error),
) editor.DetailOps[T] {
	return editor.DetailOps[T]{
		Insert: func(ctx context.Context, item T) (string, error) {
			resp, err := insert(ctx, &item)
			if err != nil {
				return "", err
			}
			rec.inserted = resp
			return resp.NewID, nil
		},
		Update: func(ctx context.Context, id string, item T, opts *client.UpdateOptions) (*client.UpdateResponse, error) {
			resp, err := update(ctx, id, &item, opts)
			if err == nil {
				rec.updated = resp
			}
			return resp, err
		},
		Delete: func(ctx context.Context, id string) error {
			resp, err := del(ctx, id)
			if err == nil {
				rec.deleted = resp
			}
			return err
		},
	}
}

// dateFlag parses a yyyy-MM-dd flag value, empty meaning unset.
func dateFlag(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		fatalf("invalid date %q (expected yyyy-MM-dd)", s)
	}
	return d
}

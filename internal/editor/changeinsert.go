package editor

import (
	"context"

	"github.com/freshcms/payadm/internal/model"
)

// Decision is the outcome of a change-insert prompt. When Proceed is
// false the save is abandoned. Mode is empty when no prompt was needed
// and the update is an implicit correction.
type Decision struct {
	Proceed bool
	Mode    model.ChangeInsertMode
}

// Confirmer asks the user whether moving a record's effective date should
// correct the current version or insert a new one.
type Confirmer interface {
	ConfirmChangeInsert(ctx context.Context, existing, candidate model.Date) (Decision, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, existing, candidate model.Date) (Decision, error)

func (f ConfirmerFunc) ConfirmChangeInsert(ctx context.Context, existing, candidate model.Date) (Decision, error) {
	return f(ctx, existing, candidate)
}

// Decide resolves the change-insert question for a save that moves the
// effective start from existing to candidate. When the dates do not call
// for a prompt the save proceeds as a plain correction; otherwise the
// confirmer is consulted.
func Decide(ctx context.Context, c Confirmer, existing, candidate model.Date) (Decision, error) {
	if !model.NeedsChangeInsertConfirm(existing, candidate) {
		return Decision{Proceed: true}, nil
	}
	if c == nil {
		return Decision{Proceed: true, Mode: model.ModeCorrection}, nil
	}
	return c.ConfirmChangeInsert(ctx, existing, candidate)
}

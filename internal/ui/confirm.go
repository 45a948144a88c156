package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/freshcms/payadm/internal/editor"
	"github.com/freshcms/payadm/internal/model"
)

// TerminalConfirmer prompts on a terminal when a save moves a record's
// effective date: correct the current version, insert a new one, or
// abandon the save.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

var _ editor.Confirmer = (*TerminalConfirmer)(nil)

// ConfirmChangeInsert implements editor.Confirmer.
func (t *TerminalConfirmer) ConfirmChangeInsert(ctx context.Context, existing, candidate model.Date) (editor.Decision, error) {
	from := "the beginning"
	if !existing.IsZero() {
		from = existing.Display()
	}
	fmt.Fprintln(t.Out, RenderWarn(fmt.Sprintf(
		"Effective date moves from %s to %s.", from, candidate.Display())))
	fmt.Fprintln(t.Out, "  [c] correct the current version")
	fmt.Fprintln(t.Out, "  [i] insert a new version from "+candidate.Display())
	fmt.Fprintln(t.Out, "  [q] cancel")

	reader := bufio.NewReader(t.In)
	for {
		if err := ctx.Err(); err != nil {
			return editor.Decision{}, err
		}
		fmt.Fprint(t.Out, "choice [c/i/q]: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return editor.Decision{}, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "c":
			return editor.Decision{Proceed: true, Mode: model.ModeCorrection}, nil
		case "i":
			return editor.Decision{Proceed: true, Mode: model.ModeChangeInsert}, nil
		case "q", "":
			return editor.Decision{}, nil
		}
	}
}

package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/freshcms/payadm/internal/editor"
	"github.com/freshcms/payadm/internal/model"
)

func TestTerminalConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  editor.Decision
	}{
		{"Correction", "c\n", editor.Decision{Proceed: true, Mode: model.ModeCorrection}},
		{"ChangeInsert", "i\n", editor.Decision{Proceed: true, Mode: model.ModeChangeInsert}},
		{"Cancel", "q\n", editor.Decision{}},
		{"EmptyCancels", "\n", editor.Decision{}},
		{"RetryOnGarbage", "x\nI\n", editor.Decision{Proceed: true, Mode: model.ModeChangeInsert}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			c := &TerminalConfirmer{In: strings.NewReader(tt.input), Out: &out}
			got, err := c.ConfirmChangeInsert(context.Background(),
				model.NewDate(2025, 1, 1), model.NewDate(2026, 3, 1))
			if err != nil {
				t.Fatalf("ConfirmChangeInsert: %v", err)
			}
			if got != tt.want {
				t.Errorf("decision = %+v, want %+v", got, tt.want)
			}
			if !strings.Contains(out.String(), "01-Jan-2025") {
				t.Errorf("prompt missing the existing date: %q", out.String())
			}
		})
	}
}

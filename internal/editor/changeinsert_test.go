package editor

import (
	"context"
	"testing"

	"github.com/freshcms/payadm/internal/model"
)

func TestDecideSkipsPromptWhenDatesAgree(t *testing.T) {
	called := false
	c := ConfirmerFunc(func(context.Context, model.Date, model.Date) (Decision, error) {
		called = true
		return Decision{}, nil
	})
	eff := model.NewDate(2025, 1, 1)
	d, err := Decide(context.Background(), c, eff, eff)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if called {
		t.Errorf("prompt fired for an unchanged effective date")
	}
	if !d.Proceed || d.Mode != "" {
		t.Errorf("decision = %+v", d)
	}
}

func TestDecideNilConfirmerDefaultsToCorrection(t *testing.T) {
	d, err := Decide(context.Background(), nil, model.NewDate(2025, 1, 1), model.NewDate(2026, 1, 1))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if !d.Proceed || d.Mode != model.ModeCorrection {
		t.Errorf("decision = %+v", d)
	}
}

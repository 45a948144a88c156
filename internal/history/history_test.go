package history

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/freshcms/payadm/internal/model"
)

type fakeSource struct {
	mu    sync.Mutex
	calls int
	delay map[string]time.Duration
}

func (f *fakeSource) Histories(ctx context.Context, _ model.Component, id string) ([]model.HistoryItem, error) {
	f.mu.Lock()
	f.calls++
	d := f.delay[id]
	f.mu.Unlock()
	if d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return []model.HistoryItem{
		{EffectiveStart: model.NewDate(2025, 1, 1)},
	}, nil
}

func TestViewerOpenAlwaysFetches(t *testing.T) {
	src := &fakeSource{}
	v := NewViewer(src)
	defer v.Close()

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		items, err := v.Open(ctx, model.ComponentPayrollElement, "e1")
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("items = %+v", items)
		}
	}
	if src.calls != 2 {
		t.Errorf("calls = %d, want a fresh fetch per open", src.calls)
	}
}

func TestViewerSupersededFetchLoses(t *testing.T) {
	src := &fakeSource{delay: map[string]time.Duration{"slow": 50 * time.Millisecond}}
	v := NewViewer(src)
	defer v.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := v.Open(ctx, model.ComponentPayrollElement, "slow"); err == nil {
			t.Errorf("superseded open reported success")
		}
	}()
	time.Sleep(10 * time.Millisecond)
	if _, err := v.Open(ctx, model.ComponentPayrollElement, "fast"); err != nil {
		t.Fatalf("Open fast: %v", err)
	}
	wg.Wait()

	if len(v.Items()) != 1 {
		t.Errorf("items = %+v", v.Items())
	}
}

func TestViewerRefresh(t *testing.T) {
	src := &fakeSource{}
	v := NewViewer(src)
	defer v.Close()

	ctx := context.Background()
	if items, err := v.Refresh(ctx); err != nil || items != nil {
		t.Fatalf("Refresh with nothing open: %v %v", items, err)
	}
	if _, err := v.Open(ctx, model.ComponentPayrollElement, "e1"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := v.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if src.calls != 2 {
		t.Errorf("calls = %d", src.calls)
	}
}

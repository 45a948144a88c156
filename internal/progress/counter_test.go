package progress

import (
	"sync"
	"testing"
)

func TestCounterAddDone(t *testing.T) {
	var c Counter
	if c.Busy() {
		t.Error("zero counter should not be busy")
	}

	c.Add()
	c.Add()
	if got := c.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if !c.Busy() {
		t.Error("counter with in-flight requests should be busy")
	}

	c.Done()
	c.Done()
	if got := c.Count(); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
}

func TestCounterSubscribe(t *testing.T) {
	var c Counter
	var seen []int
	c.Subscribe(func(count int) { seen = append(seen, count) })

	c.Add()
	c.Add()
	c.Done()

	want := []int{1, 2, 1}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestCounterConcurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add()
			c.Done()
		}()
	}
	wg.Wait()
	if got := c.Count(); got != 0 {
		t.Errorf("Count after balanced add/done = %d, want 0", got)
	}
}

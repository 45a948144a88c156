package editor

import (
	"errors"
	"testing"
)

func TestDialogLifecycle(t *testing.T) {
	var d Dialog[string, int]

	done, err := d.Open("pick a number")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !d.IsOpen() {
		t.Errorf("IsOpen = false after Open")
	}
	if got := d.Param(); got != "pick a number" {
		t.Errorf("Param = %q", got)
	}

	d.Close(42)
	r := <-done
	if !r.OK || r.Value != 42 {
		t.Errorf("result = %+v", r)
	}
	if d.IsOpen() {
		t.Errorf("IsOpen = true after Close")
	}
}

func TestDialogCancel(t *testing.T) {
	var d Dialog[string, int]
	done, err := d.Open("x")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	d.Cancel()
	if r := <-done; r.OK {
		t.Errorf("cancelled dialog reported OK")
	}
}

func TestDialogSingleFlight(t *testing.T) {
	var d Dialog[string, int]
	done, err := d.Open("first")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// The second opener is rejected, not queued, and must not disturb
	// the session in progress.
	if _, err := d.Open("second"); !errors.Is(err, ErrDialogBusy) {
		t.Fatalf("second Open: err = %v, want ErrDialogBusy", err)
	}
	if got := d.Param(); got != "first" {
		t.Errorf("Param = %q, rejected opener overwrote the session", got)
	}

	d.Close(1)
	if r := <-done; !r.OK || r.Value != 1 {
		t.Errorf("result = %+v", r)
	}

	// The dialog is reusable once resolved.
	if _, err := d.Open("third"); err != nil {
		t.Fatalf("reopen: %v", err)
	}
}

func TestDialogIdleCloseNoop(t *testing.T) {
	var d Dialog[string, int]
	d.Close(5)
	d.Cancel()
	if d.IsOpen() {
		t.Errorf("idle dialog became open")
	}
}

package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerBasic(t *testing.T) {
	var w syncBuffer
	s := newSpinner(context.Background(), &w, printer{w: io.Discard}, "Rendering...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(w.String(), "Rendering...") {
		t.Errorf("spinner output %q should contain the message", w.String())
	}
	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	var w syncBuffer
	s := newSpinner(context.Background(), &w, printer{w: io.Discard}, "first")
	s.Start()
	s.SetMessage("3/10 badges")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(w.String(), "3/10 badges") {
		t.Errorf("spinner output %q should contain the updated message", w.String())
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, io.Discard, printer{w: io.Discard}, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinner(ctx, io.Discard, printer{w: io.Discard}, "Testing with timeout...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), io.Discard, printer{w: io.Discard}, "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithStatus(t *testing.T) {
	var out bytes.Buffer
	s := newSpinner(context.Background(), io.Discard, printer{w: &out}, "Working...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Done!")

	s = newSpinner(context.Background(), io.Discard, printer{w: &out}, "Working...")
	s.Start()
	s.StopWithError("Failed!")

	got := out.String()
	if !strings.Contains(got, iconSuccess+" Done!") || !strings.Contains(got, "Failed!") {
		t.Errorf("status output = %q", got)
	}
}

func TestSpinnerNilParent(t *testing.T) {
	//nolint:staticcheck // nil context is tolerated
	s := newSpinner(nil, io.Discard, printer{w: io.Discard}, "Test")
	s.Start()
	s.Stop()
}

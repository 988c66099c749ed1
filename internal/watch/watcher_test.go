package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatcher_FiresAfterDebounce(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(input, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int32
	w, err := New(input, 50*time.Millisecond, zap.NewNop(), func(path string) error {
		fired.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	if err := os.WriteFile(input, []byte(`{"proposals": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for fired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}

	w.Stop()

	if fired.Load() == 0 {
		t.Fatal("callback never fired after input change")
	}
	if s := w.Statistics(); s.Rebuilds == 0 || s.Events == 0 {
		t.Errorf("stats not updated: %+v", s)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(input, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int32
	w, err := New(input, 30*time.Millisecond, zap.NewNop(), func(path string) error {
		fired.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)

	w.Stop()

	if fired.Load() != 0 {
		t.Fatalf("callback fired for an unrelated file (%d times)", fired.Load())
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(input, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(input, 0, zap.NewNop(), func(string) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	w.Stop()
	w.Stop() // second call must be a no-op
}

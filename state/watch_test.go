package state

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/wherewasi/ecs/component"
)

func writeFile(dir, name string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte("scratch\n"), 0o644)
}

func TestWatcherReportsStateChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher failed: %v", err)
	}
	defer w.Close()

	if err := Save(dir, "camera", component.IdentityTransform()); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != "camera" {
			t.Fatalf("expected event for %q, got %q", "camera", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the written .state file")
	}
}

func TestWatcherCloseWithPendingEvents(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher failed: %v", err)
	}

	// Fill the event buffer with nothing consuming it, so the forwarding
	// goroutine is mid-send when Close lands.
	for i := 0; i < 32; i++ {
		if err := Save(dir, fmt.Sprintf("entity%02d", i), component.IdentityTransform()); err != nil {
			t.Fatal(err)
		}
	}
	deadline := time.Now().Add(2 * time.Second)
	for len(w.Events) < cap(w.Events) && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// The channel must drain and then close, without the sender panicking.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("events channel never closed after Close")
		}
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher failed: %v", err)
	}
	defer w.Close()

	if err := writeFile(dir, "notes.txt"); err != nil {
		t.Fatal(err)
	}
	if err := Save(dir, "camera", component.IdentityTransform()); err != nil {
		t.Fatal(err)
	}

	// The .txt write precedes the save; the first event through must still
	// be the .state one.
	select {
	case name := <-w.Events:
		if name != "camera" {
			t.Fatalf("expected only .state events, got %q", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the written .state file")
	}
}

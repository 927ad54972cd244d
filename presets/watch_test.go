package presets

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsPresetBasenames(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "fullframe.yaml"), []byte("name: fullframe\n"), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != "fullframe" {
			t.Fatalf("event = %q, want fullframe", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for preset event")
	}
}

func TestWatcherIgnoresNonPresetFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	// the yaml write after the txt write should be the first event seen
	if err := os.WriteFile(filepath.Join(dir, "crop.yml"), []byte("name: crop\n"), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != "crop" {
			t.Fatalf("event = %q, want crop", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for preset event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

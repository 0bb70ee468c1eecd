package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLayoutWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(path, builtinLayout, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchLayout(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	// Writes to other files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	if changed, _ := w.Poll(); changed {
		t.Fatal("unrelated file reported as a change")
	}

	if err := os.WriteFile(path, builtinLayout, 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if changed, err := w.Poll(); err != nil {
			t.Fatal(err)
		} else if changed {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("layout change not reported")
}

func TestLayoutWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, builtinLayout, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchLayout(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

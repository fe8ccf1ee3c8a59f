package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/tinyphong/engine/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// waitForZoom drains reloads until one carries zoom, failing after a timeout.
func waitForZoom(t *testing.T, changes <-chan *Settings, zoom float32) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-changes:
			if s.Camera.Zoom == zoom {
				return
			}
		case <-timeout:
			t.Fatalf("no reload with zoom %v", zoom)
		}
	}
}

func TestWatcherReloadsValidChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	writeFile(t, path, "[camera]\nzoom = 45.0\n")

	changes := make(chan *Settings, 16)
	w, err := NewWatcher(path, func(s *Settings) { changes <- s })
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	writeFile(t, path, "[camera]\nzoom = 50.0\n")
	waitForZoom(t, changes, 50)

	// An invalid file is skipped and the next valid one still arrives.
	writeFile(t, path, "[camera]\nzoom = -1.0\n")
	writeFile(t, path, "[camera]\nzoom = 70.0\n")
	waitForZoom(t, changes, 70)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	close(changes)
	for s := range changes {
		if s.Camera.Zoom < 0 {
			t.Errorf("invalid settings were delivered: %+v", s.Camera)
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	writeFile(t, path, "")

	changes := make(chan *Settings, 4)
	w, err := NewWatcher(path, func(s *Settings) { changes <- s })
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	writeFile(t, filepath.Join(dir, "other.toml"), "[camera]\nzoom = 10.0\n")
	select {
	case s := <-changes:
		t.Fatalf("unexpected reload: %+v", s.Camera)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	writeFile(t, path, "")
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if err := w.Run(context.Background()); !errors.Is(err, core.ErrWatcherClosed) {
		t.Fatalf("Run after Close = %v, want ErrWatcherClosed", err)
	}
}

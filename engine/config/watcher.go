package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/tinyphong/engine/core"
)

// Watcher reloads a settings file whenever it is written or recreated and
// hands the validated result to a callback. Invalid files are logged and
// ignored so the last good settings stay in effect.
type Watcher struct {
	path     string
	onChange func(*Settings)

	mutex    sync.Mutex
	fsnotify *fsnotify.Watcher
	isClosed bool
}

// NewWatcher watches the directory holding path, so editors that replace the
// file through a rename are still picked up.
func NewWatcher(path string, onChange func(*Settings)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:     abs,
		onChange: onChange,
		fsnotify: fsWatch,
	}, nil
}

// Run delivers reloads until ctx is done or the watcher is closed. It returns
// nil on cancellation and ErrWatcherClosed when Close was called.
func (w *Watcher) Run(ctx context.Context) error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	w.mutex.Unlock()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return core.ErrWatcherClosed
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return core.ErrWatcherClosed
			}
			core.LogError("settings watcher: %s", err)

		case <-ctx.Done():
			w.Close()
			return nil
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		core.LogWarn("ignoring settings change: %s", err)
		return
	}
	core.LogInfo("settings reloaded from %s", w.path)
	if w.onChange != nil {
		w.onChange(s)
	}
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	return w.fsnotify.Close()
}

func (w *Watcher) Path() string {
	return w.path
}

package config

import (
	"os"
	"sync"
	"time"
)

// Watcher polls file modification times and invokes a callback per changed
// path. Polling keeps the dependency surface flat and is cheap at the
// intervals reloads care about. The watched set can change while running:
// the active level's file is swapped in and out as levels change.
type Watcher struct {
	interval time.Duration
	onChange func(path string)
	stopCh   chan struct{}

	mu        sync.Mutex
	lastMTime map[string]time.Time
}

// NewWatcher creates a watcher with the given poll interval.
func NewWatcher(interval time.Duration, onChange func(string)) *Watcher {
	return &Watcher{
		interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Add registers a path. The current mtime is primed so only later changes
// fire the callback.
func (w *Watcher) Add(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.lastMTime[path]; ok {
		return
	}
	mt := time.Time{}
	if fi, err := os.Stat(path); err == nil {
		mt = fi.ModTime()
	}
	w.lastMTime[path] = mt
}

// Remove unregisters a path.
func (w *Watcher) Remove(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.lastMTime, path)
}

// Start begins polling in a goroutine.
func (w *Watcher) Start() {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				for _, p := range w.scan() {
					if w.onChange != nil {
						w.onChange(p)
					}
				}
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

// scan updates mtimes and returns the paths that changed since last scan.
// A file that appears after being missing counts as changed.
func (w *Watcher) scan() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var changed []string
	for p, last := range w.lastMTime {
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		mt := fi.ModTime()
		if mt.After(last) {
			w.lastMTime[p] = mt
			changed = append(changed, p)
		}
	}
	return changed
}

package config

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ycheng317/theme-engine/internal/theme"
)

// Reloader connects the watcher to the store: when a watched document
// changes it re-parses and atomically publishes the new snapshot. A
// document that fails to parse leaves the previous snapshot in place; a
// reload can degrade diagnostics, never resolution.
type Reloader struct {
	loader *Loader
	store  *theme.Store
	log    *zap.Logger

	mu       sync.Mutex
	watcher  *Watcher
	campaign string
	level    string
}

// NewReloader wires a loader and store together. A nil logger disables
// diagnostics.
func NewReloader(loader *Loader, store *theme.Store, logger *zap.Logger) *Reloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reloader{loader: loader, store: store, log: logger}
}

// Start installs the initial global snapshot and begins watching the
// settings file. Interval <= 0 loads once and does not watch.
func (r *Reloader) Start(interval time.Duration) {
	r.ReloadGlobal()
	if interval <= 0 {
		return
	}
	w := NewWatcher(interval, r.onChange)
	w.Add(r.loader.Paths().SettingsPath())
	w.Start()
	r.mu.Lock()
	r.watcher = w
	r.mu.Unlock()
}

// Stop halts watching.
func (r *Reloader) Stop() {
	r.mu.Lock()
	w := r.watcher
	r.watcher = nil
	r.mu.Unlock()
	if w != nil {
		w.Stop()
	}
}

// ReloadGlobal re-reads the settings document and publishes it. On a parse
// failure the store keeps serving the old snapshot; at first load there is
// no old snapshot, so the store's empty tree stands in.
func (r *Reloader) ReloadGlobal() {
	tree, err := r.loader.LoadGlobal()
	if err != nil {
		r.log.Warn("global theme reload failed, keeping previous snapshot", zap.Error(err))
		return
	}
	r.store.ReloadGlobal(tree)
	r.log.Info("global theme loaded", zap.Int("colors", tree.Len(theme.KindColor)),
		zap.Int("layout", tree.Len(theme.KindLayout)))
}

// SetActiveLevel loads a level's overrides, publishes them, and re-points
// the watcher at that level's file. A level without a ui_theme block
// publishes nil, which clears any previous level's overrides.
func (r *Reloader) SetActiveLevel(campaign, level string) error {
	tree, err := r.loader.LoadLevel(campaign, level)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.watcher != nil {
		if r.campaign != "" {
			r.watcher.Remove(r.loader.Paths().LevelPath(r.campaign, r.level))
		}
		r.watcher.Add(r.loader.Paths().LevelPath(campaign, level))
	}
	r.campaign, r.level = campaign, level
	r.mu.Unlock()

	r.store.SetLevel(tree)
	if tree != nil {
		r.log.Info("level theme overrides active",
			zap.String("campaign", campaign), zap.String("level", level))
	}
	return nil
}

// ClearActiveLevel drops the level overrides on level exit.
func (r *Reloader) ClearActiveLevel() {
	r.mu.Lock()
	if r.watcher != nil && r.campaign != "" {
		r.watcher.Remove(r.loader.Paths().LevelPath(r.campaign, r.level))
	}
	r.campaign, r.level = "", ""
	r.mu.Unlock()
	r.store.SetLevel(nil)
}

// onChange dispatches a changed path to the right tier.
func (r *Reloader) onChange(path string) {
	if path == r.loader.Paths().SettingsPath() {
		r.ReloadGlobal()
		return
	}

	r.mu.Lock()
	campaign, level := r.campaign, r.level
	r.mu.Unlock()
	if campaign == "" || path != r.loader.Paths().LevelPath(campaign, level) {
		return
	}

	tree, err := r.loader.LoadLevel(campaign, level)
	if err != nil {
		r.log.Warn("level theme reload failed, keeping previous snapshot",
			zap.String("campaign", campaign), zap.String("level", level), zap.Error(err))
		return
	}
	r.store.ReloadLevel(tree)
}

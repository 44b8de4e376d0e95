package theme

import "sync/atomic"

// emptyTree stands in for "no configuration at this tier"; every lookup on
// it misses and the chain falls through.
var emptyTree = &Tree{}

// Store holds the current configuration snapshots: one global tree for the
// process lifetime and one optional tree for the active level. Snapshots
// are replaced wholesale by a single pointer swap, never merged in place,
// so a reader observes either the old tree or the new one in full.
//
// Writers (startup loader, reload watcher, level transitions) may run on a
// separate goroutine from the render-loop readers; the atomic publish is
// the only synchronization needed because trees are immutable.
type Store struct {
	global atomic.Pointer[Tree]
	level  atomic.Pointer[Tree]
}

// NewStore returns a store with an empty global tier and no level tier.
func NewStore() *Store {
	s := &Store{}
	s.global.Store(emptyTree)
	return s
}

// LoadGlobal installs the initial global snapshot. A nil tree installs the
// empty one: a failed startup parse degrades to defaults instead of
// aborting.
func (s *Store) LoadGlobal(t *Tree) {
	if t == nil {
		t = emptyTree
	}
	s.global.Store(t)
}

// ReloadGlobal replaces the global snapshot. Callers must only pass fully
// parsed trees; on a parse failure the previous snapshot stays in place.
func (s *Store) ReloadGlobal(t *Tree) { s.LoadGlobal(t) }

// SetLevel replaces the active level snapshot. Nil means the level
// contributes no overrides and every key falls through.
func (s *Store) SetLevel(t *Tree) {
	if t == nil {
		s.level.Store(emptyTree)
		return
	}
	s.level.Store(t)
}

// ReloadLevel replaces the level snapshot, same contract as ReloadGlobal.
func (s *Store) ReloadLevel(t *Tree) { s.SetLevel(t) }

// Global returns the current global snapshot (never nil).
func (s *Store) Global() *Tree { return s.global.Load() }

// Level returns the current level snapshot (empty when no level is active).
func (s *Store) Level() *Tree {
	if t := s.level.Load(); t != nil {
		return t
	}
	return emptyTree
}

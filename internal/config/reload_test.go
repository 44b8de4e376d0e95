package config_test

import (
	"path/filepath"
	"testing"

	"github.com/ycheng317/theme-engine/internal/config"
	"github.com/ycheng317/theme-engine/internal/theme"
)

func newReloader(t *testing.T, dir string) (*config.Reloader, *theme.Resolver) {
	t.Helper()
	store := theme.NewStore()
	loader := config.NewLoader(dir, nil)
	rel := config.NewReloader(loader, store, nil)
	rel.Start(0) // load once, no polling; tests drive reloads directly
	t.Cleanup(rel.Stop)
	return rel, theme.NewResolver(store, nil)
}

func TestReloaderInstallsGlobalAtStart(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "settings.yaml"),
		"ui_theme:\n  colors:\n    icon:\n      gold: [10, 20, 30]\n")

	_, r := newReloader(t, dir)
	if got, want := r.Color("icon", "gold"), theme.RGB(10, 20, 30); got != want {
		t.Fatalf("icon.gold = %v, want %v", got, want)
	}
}

func TestReloaderKeepsSnapshotOnParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	writeFile(t, path, "ui_theme:\n  colors:\n    icon:\n      gold: [10, 20, 30]\n")

	rel, r := newReloader(t, dir)

	writeFile(t, path, "ui_theme: [broken")
	rel.ReloadGlobal()
	if got, want := r.Color("icon", "gold"), theme.RGB(10, 20, 30); got != want {
		t.Fatalf("after failed reload: %v, want previous snapshot %v", got, want)
	}

	writeFile(t, path, "ui_theme:\n  colors:\n    icon:\n      gold: [40, 50, 60]\n")
	rel.ReloadGlobal()
	if got, want := r.Color("icon", "gold"), theme.RGB(40, 50, 60); got != want {
		t.Fatalf("after good reload: %v, want %v", got, want)
	}
}

func TestReloaderLevelLifecycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "settings.yaml"),
		"ui_theme:\n  colors:\n    icon:\n      gold: [255, 200, 50]\n")

	rel, r := newReloader(t, dir)
	loader := config.NewLoader(dir, nil)

	// level A: no ui_theme block
	writeFile(t, loader.Paths().LevelPath("c", "a"), "name: A\n")
	if err := rel.SetActiveLevel("c", "a"); err != nil {
		t.Fatal(err)
	}
	if got, want := r.Color("icon", "gold"), theme.RGB(255, 200, 50); got != want {
		t.Fatalf("level A: %v, want global %v", got, want)
	}

	// level B overrides icon.gold
	writeFile(t, loader.Paths().LevelPath("c", "b"),
		"ui_theme:\n  colors:\n    icon:\n      gold: [255, 180, 100]\n")
	if err := rel.SetActiveLevel("c", "b"); err != nil {
		t.Fatal(err)
	}
	if got, want := r.Color("icon", "gold"), theme.RGB(255, 180, 100); got != want {
		t.Fatalf("level B: %v, want override %v", got, want)
	}

	// back to level A, then no level at all
	if err := rel.SetActiveLevel("c", "a"); err != nil {
		t.Fatal(err)
	}
	if got, want := r.Color("icon", "gold"), theme.RGB(255, 200, 50); got != want {
		t.Fatalf("level A again: %v, want %v", got, want)
	}
	rel.ClearActiveLevel()
	if got, want := r.Color("icon", "gold"), theme.RGB(255, 200, 50); got != want {
		t.Fatalf("no level: %v, want %v", got, want)
	}
}

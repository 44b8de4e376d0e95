package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ycheng317/theme-engine/internal/config"
)

func waitFor(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("changed path = %q, want %q", got, want)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no change reported for %q", want)
	}
}

func TestWatcherReportsMTimeChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	writeFile(t, path, "a: 1\n")

	ch := make(chan string, 4)
	w := config.NewWatcher(10*time.Millisecond, func(p string) { ch <- p })
	w.Add(path)
	w.Start()
	defer w.Stop()

	// mtime granularity can be coarse; push it forward explicitly
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
	waitFor(t, ch, path)
}

func TestWatcherSeesFileAppear(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "late.yaml")

	ch := make(chan string, 4)
	w := config.NewWatcher(10*time.Millisecond, func(p string) { ch <- p })
	w.Add(path) // not on disk yet
	w.Start()
	defer w.Stop()

	writeFile(t, path, "a: 1\n")
	waitFor(t, ch, path)
}

func TestWatcherRemoveStopsReports(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	writeFile(t, path, "a: 1\n")

	ch := make(chan string, 4)
	w := config.NewWatcher(10*time.Millisecond, func(p string) { ch <- p })
	w.Add(path)
	w.Remove(path)
	w.Start()
	defer w.Stop()

	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-ch:
		t.Fatalf("removed path still reported: %q", p)
	case <-time.After(100 * time.Millisecond):
	}
}

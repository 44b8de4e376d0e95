// Package config turns configuration documents on disk into theme trees
// and keeps the store's snapshots current. Everything that blocks or
// touches the filesystem lives here; the theme package itself never does
// either.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ycheng317/theme-engine/internal/theme"
)

// Paths helper for the settings and level files.
type Paths struct {
	BaseDir string // config root, e.g. /opt/game/config
}

func (p Paths) SettingsPath() string {
	return filepath.Join(p.BaseDir, "settings.yaml")
}

func (p Paths) LevelPath(campaign, level string) string {
	return filepath.Join(p.BaseDir, "campaigns", campaign, "levels", level+".yaml")
}

// Loader reads YAML documents and builds theme trees from their ui_theme
// block. Shape-invalid entries are logged and dropped here, so downstream
// trees only hold well-typed values.
type Loader struct {
	paths Paths
	log   *zap.Logger
}

// NewLoader creates a loader rooted at baseDir. A nil logger disables
// diagnostics.
func NewLoader(baseDir string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{paths: Paths{BaseDir: baseDir}, log: logger}
}

// Paths returns the loader's path helper.
func (l *Loader) Paths() Paths { return l.paths }

// LoadGlobal reads the settings document and builds the global tree. A
// missing file or missing ui_theme block yields the empty tree: the chain
// still resolves through defaults. Malformed YAML is an error; the caller
// decides whether to install empty (startup) or keep the old snapshot
// (reload).
func (l *Loader) LoadGlobal() (*theme.Tree, error) {
	doc, err := readYAML(l.paths.SettingsPath())
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return l.buildTree(doc, l.paths.SettingsPath()), nil
}

// LoadLevel reads one level document and builds its override tree. A
// missing file or a document without a ui_theme block returns nil: the
// level contributes no overrides.
func (l *Loader) LoadLevel(campaign, level string) (*theme.Tree, error) {
	path := l.paths.LevelPath(campaign, level)
	doc, err := readYAML(path)
	if err != nil {
		return nil, fmt.Errorf("load level %s/%s: %w", campaign, level, err)
	}
	if _, ok := doc["ui_theme"]; !ok {
		return nil, nil
	}
	return l.buildTree(doc, path), nil
}

// buildTree extracts the ui_theme block and validates it into a tree.
func (l *Loader) buildTree(doc map[string]any, path string) *theme.Tree {
	block, _ := doc["ui_theme"].(map[string]any)
	tree, shapeErrs := theme.NewTree(block)
	for _, e := range shapeErrs {
		l.log.Warn("dropping malformed theme entry",
			zap.String("file", path),
			zap.String("path", e.Path),
			zap.String("reason", e.Reason))
	}
	return tree
}

// readYAML loads a YAML file into a generic document. Missing files return
// a nil document, no error.
func readYAML(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

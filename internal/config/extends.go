package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CycleError reports an "extends" chain that loops back on itself.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("extends cycle detected: %s", strings.Join(e.Path, " -> "))
}

// resolveExtends follows path's "extends" chain to the root ancestor
// and folds every config down into one, applying the deepest ancestor
// first so each descendant's own settings win. It rejects a chain that
// revisits a file it has already loaded.
func resolveExtends(path string) (BatchConfig, error) {
	visited := make(map[string]bool)
	return resolveExtendsFrom(path, visited, nil)
}

func resolveExtendsFrom(path string, visited map[string]bool, chain []string) (BatchConfig, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return BatchConfig{}, fmt.Errorf("config: resolve path %q: %w", path, err)
	}

	if visited[abs] {
		return BatchConfig{}, &CycleError{Path: append(append([]string{}, chain...), abs)}
	}
	visited[abs] = true
	chain = append(chain, abs)

	raw, err := os.ReadFile(abs)
	if err != nil {
		return BatchConfig{}, fmt.Errorf("config: read %q: %w", abs, err)
	}

	var cfg BatchConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return BatchConfig{}, fmt.Errorf("config: parse %q: %w", abs, err)
	}

	if cfg.Extends == "" {
		return cfg, nil
	}

	parentPath := cfg.Extends
	if !filepath.IsAbs(parentPath) {
		parentPath = filepath.Join(filepath.Dir(abs), parentPath)
	}

	base, err := resolveExtendsFrom(parentPath, visited, chain)
	if err != nil {
		return BatchConfig{}, err
	}

	merged := merge(base, cfg)
	merged.Extends = ""
	return merged, nil
}

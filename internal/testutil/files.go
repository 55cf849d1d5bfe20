// Package testutil holds small helpers shared by this module's test
// suites: writing fixture files and a row type for table-driven cases,
// so each package's tests don't reinvent the same TempDir boilerplate.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name under dir, creating dir's parents
// if needed, and fails the test immediately on error.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("testutil: mkdir %q: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("testutil: write %q: %v", path, err)
	}
	return path
}

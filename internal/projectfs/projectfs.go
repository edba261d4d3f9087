// Package projectfs provides project file system operations for scaffolding.
//
// Overview:
//   - Responsibility: Root-anchored file writes, existence checks, listing
//   - Key Types: ProjectFS
//   - Concurrency Model: Sequential file operations
//   - Error Semantics: File system errors wrapped with the relative path
//   - Performance Notes: Idempotent directory creation, minimal I/O
//
// Usage:
//
//	fs := projectfs.New(".")
//	err := fs.WriteFile("modules/products/model.go", content, 0644)
package projectfs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/sango-kit/sango/internal/ui"
)

// ProjectFS performs file system operations relative to a project root.
type ProjectFS struct {
	rootDir string
	verbose bool
}

// New creates a project file system anchored at rootDir.
func New(rootDir string) *ProjectFS {
	return &ProjectFS{rootDir: rootDir}
}

// SetVerbose enables per-operation debug output.
func (p *ProjectFS) SetVerbose(enabled bool) {
	p.verbose = enabled
}

// WriteFile writes content to a file, creating parent directories as needed.
func (p *ProjectFS) WriteFile(path, content string, mode fs.FileMode) error {
	fullPath := filepath.Join(p.rootDir, path)

	parentDir := filepath.Dir(fullPath)
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	if p.verbose {
		ui.Debug("written file: %s", path)
	}
	return nil
}

// FileExists checks if a file exists.
func (p *ProjectFS) FileExists(path string) (bool, error) {
	fullPath := filepath.Join(p.rootDir, path)
	_, err := os.Stat(fullPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ListSubdirectories returns the names of immediate subdirectories of path,
// in lexical order. A missing path yields an empty list, not an error.
func (p *ProjectFS) ListSubdirectories(path string) ([]string, error) {
	fullPath := filepath.Join(p.rootDir, path)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list directory %s: %w", path, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

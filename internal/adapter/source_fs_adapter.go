package adapter

import (
	"os"
	"path/filepath"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the workflow relies on
// when feeding files to the checker. It hides direct `os` access so the
// domain logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// Abs resolves path against root unless it is already absolute.
	Abs(root, path m.Path) m.Path
}

// LocalSourceFSAdapter is the os-backed implementation of SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// Abs resolves path against root unless it is already absolute.
func (a *LocalSourceFSAdapter) Abs(root, path m.Path) m.Path {
	p := string(path)
	if filepath.IsAbs(p) {
		return m.Path(filepath.Clean(p))
	}

	return m.Path(filepath.Join(string(root), p))
}

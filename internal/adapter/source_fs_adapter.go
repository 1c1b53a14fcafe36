// Package adapter contains infrastructure adapters for the BoundSmith CLI.
package adapter

import (
	"os"
	"path/filepath"
	"strings"

	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning user projects. It intentionally hides direct
// `os` access so the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// DetectTestFile attempts to find a Go test file that matches the
	// provided source file. This allows the domain to auto-link
	// source/test pairs.
	DetectTestFile(sourcePath m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete implementation backing the
// SourceFSAdapter interface with the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready
// to be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// DetectTestFile finds the companion *_test.go file for the provided source path.
func (a *LocalSourceFSAdapter) DetectTestFile(sourcePath m.Path) (m.Path, error) {
	source := string(sourcePath)
	if filepath.Ext(source) != ".go" {
		return "", nil
	}

	if strings.HasSuffix(source, "_test.go") {
		return "", nil
	}

	base := strings.TrimSuffix(filepath.Base(source), ".go")
	testFile := filepath.Join(filepath.Dir(source), base+"_test.go")

	if _, err := os.Stat(testFile); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", err
	}

	return m.Path(testFile), nil
}

package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// projectMarkers identify a C/C++ project root, checked in order while
// walking up from the start directory.
var projectMarkers = []string{"compile_commands.json", ".clang-tidy", "ctlint.yaml", ".git"}

// WorkspaceAdapter abstracts the filesystem operations the fix-mode helper
// relies on. It hides direct `os` access so the patch logic can be tested
// without touching the disk.
type WorkspaceAdapter interface {
	// FindProjectRoot walks up from startPath looking for a project marker
	// file. When none is found the start directory itself is the root.
	FindProjectRoot(startPath m.Path) (m.Path, error)

	// CreateTempDir creates a temporary directory for the fix workspace.
	CreateTempDir(pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// CopyDir recursively copies a directory tree.
	CopyDir(src, dst m.Path) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions,
	// creating parent directories as needed.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
}

// LocalWorkspaceAdapter is the concrete implementation backed by the local
// filesystem.
type LocalWorkspaceAdapter struct{}

// NewLocalWorkspaceAdapter constructs a LocalWorkspaceAdapter.
func NewLocalWorkspaceAdapter() *LocalWorkspaceAdapter {
	return &LocalWorkspaceAdapter{}
}

// FindProjectRoot searches for a project marker walking up the directory tree.
func (a *LocalWorkspaceAdapter) FindProjectRoot(startPath m.Path) (m.Path, error) {
	dir, err := filepath.Abs(string(startPath))
	if err != nil {
		return "", fmt.Errorf("resolve start path: %w", err)
	}

	start := dir

	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return m.Path(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return m.Path(start), nil
		}

		dir = parent
	}
}

// CreateTempDir creates a temporary directory for the fix workspace.
func (a *LocalWorkspaceAdapter) CreateTempDir(pattern string) (m.Path, error) {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	return m.Path(dir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalWorkspaceAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// CopyDir recursively copies src into dst, preserving relative layout and
// file permissions. Symlinks are skipped; the linter never follows them.
func (a *LocalWorkspaceAdapter) CopyDir(src, dst m.Path) error {
	srcRoot := string(src)
	dstRoot := string(dst)

	return filepath.Walk(srcRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(dstRoot, rel)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode().Perm())
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		return copyFile(path, targetPath, info.Mode().Perm())
	})
}

// ReadFile loads file contents from disk.
func (a *LocalWorkspaceAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file, creating parent directories as needed.
func (a *LocalWorkspaceAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	return os.WriteFile(string(path), content, perm)
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() {
		_ = in.Close()
	}()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()

		return err
	}

	return out.Close()
}

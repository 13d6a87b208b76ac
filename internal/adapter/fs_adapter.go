// Package adapter contains filesystem and output adapters for the capres CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	m "capres.dev/pkg/capres/internal/model"
)

// FSAdapter abstracts the filesystem operations the domain layer relies on
// when probing SDK trees, scanning third-party sources and staging runtime
// artifacts. It hides direct `os` access so the domain logic can be tested
// without touching the disk.
type FSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// Open opens a file for streaming reads.
	Open(path m.Path) (io.ReadCloser, error)

	// FileInfo returns metadata for a path so the domain can check existence,
	// kind and modification time.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// CopyFile replaces dst with the contents of src and stamps it with modTime.
	// Readers never observe a partially written dst.
	CopyFile(src, dst m.Path, modTime time.Time) error

	// FindProjectRoot walks up from startPath looking for a directory holding
	// a file that matches pattern (e.g. "*.uproject").
	FindProjectRoot(startPath m.Path, pattern string) (m.Path, error)

	// Abs returns an absolute, cleaned version of path.
	Abs(path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// ErrProjectNotFound is returned by FindProjectRoot when no ancestor matches.
var ErrProjectNotFound = errors.New("project root not found")

// LocalFSAdapter is the os-backed FSAdapter.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter ready to be wired into the
// domain services.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
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

// Open opens the file at path for reading.
func (a *LocalFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - descriptor paths come from the configured third-party tree
	return os.Open(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates path with 0o755 permissions.
func (a *LocalFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o755)
}

// CopyFile writes src into a temporary sibling of dst and renames it into
// place, so concurrent stagers of the same artifact never interleave bytes.
func (a *LocalFSAdapter) CopyFile(src, dst m.Path, modTime time.Time) (err error) {
	// #nosec G304 - src is the resolved SDK runtime library
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	dir := filepath.Dir(string(dst))

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(dst))+".tmp-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, sourceFile); err != nil {
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	if err = os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return err
	}

	if err = os.Chtimes(tmpName, modTime, modTime); err != nil {
		return err
	}

	return os.Rename(tmpName, string(dst))
}

// FindProjectRoot searches for a file matching pattern walking up the directory tree.
func (a *LocalFSAdapter) FindProjectRoot(startPath m.Path, pattern string) (m.Path, error) {
	dir, err := filepath.Abs(string(startPath))
	if err != nil {
		return "", err
	}

	for {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", err
		}

		for _, match := range matches {
			if info, statErr := os.Stat(match); statErr == nil && info.Mode().IsRegular() {
				return m.Path(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in any parent directory of %s", ErrProjectNotFound, pattern, startPath)
		}

		dir = parent
	}
}

// Abs returns the absolute form of path.
func (a *LocalFSAdapter) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// IsNotExist reports whether err means the path does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

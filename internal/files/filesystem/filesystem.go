package filesystem

import (
	"io/fs"
)

// FileMode is an alias for fs.FileMode so callers need not import io/fs.
type FileMode = fs.FileMode

// FileSystem is the minimal set of operations the generator performs on disk.
type FileSystem interface {
	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile creates or truncates the file at path.
	WriteFile(path string, data []byte, perm FileMode) error

	// Exists reports whether a file or directory exists at path.
	Exists(path string) (bool, error)

	// Rename moves oldPath to newPath, replacing newPath if present.
	Rename(oldPath, newPath string) error

	// Remove deletes the file at path.
	Remove(path string) error
}

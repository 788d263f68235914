package filesystem

import (
	"errors"
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystem for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) WriteFile(path string, data []byte, perm FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (p *OSFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (p *OSFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (p *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

var _ FileSystem = (*OSFileSystem)(nil)

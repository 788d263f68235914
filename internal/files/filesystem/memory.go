package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
)

// MemoryFileSystem implements FileSystem for in-memory testing.
// Directories are implicit: a path exists when a file was added under it.
type MemoryFileSystem struct {
	mu    sync.Mutex
	files map[string][]byte

	// Fail injects errors per operation ("read", "write", "rename") for tests.
	Fail map[string]error
}

// NewMemoryFileSystem creates a new, empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string][]byte),
		Fail:  make(map[string]error),
	}
}

// normalize converts paths to forward slashes (virtual filesystem convention)
func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// AddFile adds a file to the in-memory filesystem
func (m *MemoryFileSystem) AddFile(filePath string, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[normalize(filePath)] = []byte(content)
}

// Files returns the sorted paths of all stored files.
func (m *MemoryFileSystem) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.Fail["read"]; err != nil {
		return nil, err
	}
	content, ok := m.files[normalize(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (m *MemoryFileSystem) WriteFile(filePath string, data []byte, perm FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.Fail["write"]; err != nil {
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[normalize(filePath)] = stored
	return nil
}

func (m *MemoryFileSystem) Exists(filePath string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := normalize(filePath)
	if _, ok := m.files[p]; ok {
		return true, nil
	}
	for existing := range m.files {
		if len(existing) > len(p) && existing[:len(p)] == p && existing[len(p)] == '/' {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryFileSystem) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.Fail["rename"]; err != nil {
		return err
	}
	oldKey := normalize(oldPath)
	content, ok := m.files[oldKey]
	if !ok {
		return fmt.Errorf("rename %s: %w", oldPath, fs.ErrNotExist)
	}
	delete(m.files, oldKey)
	m.files[normalize(newPath)] = content
	return nil
}

func (m *MemoryFileSystem) Remove(filePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := normalize(filePath)
	if _, ok := m.files[key]; !ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	delete(m.files, key)
	return nil
}

var _ FileSystem = (*MemoryFileSystem)(nil)

package filesystem

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data to path using a temp file + rename.
// The temp file is created next to path so the rename stays on one volume.
// If the operation fails, the original file (if any) is left unchanged.
func WriteFileAtomic(fsys FileSystem, path string, data []byte, perm FileMode) error {
	tmpPath := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := fsys.WriteFile(tmpPath, data, perm); err != nil {
		_ = fsys.Remove(tmpPath)
		return err
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return err
	}
	return nil
}

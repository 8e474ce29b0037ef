package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// VerifyWritten checks that path exists and is non-empty, and returns its size.
// An empty file is removed.
func VerifyWritten(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat output file: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("output path %s is a directory", path)
	}
	if info.Size() == 0 {
		os.Remove(path)
		return 0, fmt.Errorf("output file %s is empty after rendering", path)
	}
	return info.Size(), nil
}

// Package fs provides filesystem persistence for scraped pages and their
// image assets.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pagemd/pagemd"
)

// Ensure Writer implements pagemd.FileWriter at compile time.
var _ pagemd.FileWriter = (*Writer)(nil)

// Writer persists rendered page content to disk.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write writes content to path, creating parent directories as needed, and
// returns the path written.
func (w *Writer) Write(ctx context.Context, content string, path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", pagemd.Errorf(pagemd.EWRITE, "failed to create output directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", pagemd.Errorf(pagemd.EWRITE, "failed to write %s: %v", path, err)
	}
	return path, nil
}

// Clear removes all files and subdirectories directly under dir, keeping
// dir itself. A missing dir is not an error.
func (w *Writer) Clear(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return pagemd.Errorf(pagemd.EWRITE, "failed to read directory %s: %v", dir, err)
	}

	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return pagemd.Errorf(pagemd.EWRITE, "failed to clear %s: %v", dir, err)
		}
	}

	return nil
}

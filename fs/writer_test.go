package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pagemd/pagemd"
	"github.com/pagemd/pagemd/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ pagemd.FileWriter = &fs.Writer{}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes content and returns the path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter()

		path := filepath.Join(dir, "index.md")
		got, err := w.Write(context.Background(), "# Hello\n", path)

		require.NoError(t, err)
		assert.Equal(t, path, got)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Hello\n", string(content))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter()

		path := filepath.Join(dir, "deeply", "nested", "index.html")
		_, err := w.Write(context.Background(), "<p>x</p>", path)

		require.NoError(t, err)
		_, err = os.Stat(path)
		require.NoError(t, err)
	})
}

func TestWriter_Clear(t *testing.T) {
	t.Parallel()

	t.Run("removes files and subdirectories but keeps the directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.md"), []byte("old"), 0644))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "images", "a"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "a", "b.png"), []byte("png"), 0644))

		w := fs.NewWriter()
		err := w.Clear(context.Background(), dir)

		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing directory is not an error", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter()
		err := w.Clear(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))

		require.NoError(t, err)
	})
}

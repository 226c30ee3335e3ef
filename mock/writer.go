package mock

import (
	"context"

	"github.com/pagemd/pagemd"
)

var _ pagemd.FileWriter = (*Writer)(nil)

// Writer is a mock implementation of pagemd.FileWriter.
type Writer struct {
	WriteFn func(ctx context.Context, content string, path string) (string, error)
	ClearFn func(ctx context.Context, dir string) error
}

func (w *Writer) Write(ctx context.Context, content string, path string) (string, error) {
	return w.WriteFn(ctx, content, path)
}

func (w *Writer) Clear(ctx context.Context, dir string) error {
	return w.ClearFn(ctx, dir)
}

package pagemd

import "context"

// FileWriter persists rendered content to disk.
type FileWriter interface {
	// Write writes content to path, creating parent directories as needed,
	// and returns the path written. Fails with EWRITE on filesystem errors.
	Write(ctx context.Context, content string, path string) (string, error)

	// Clear removes all files and subdirectories directly under dir.
	// Destructive and non-transactional; callers must point it at a
	// dedicated output root, never a shared location.
	Clear(ctx context.Context, dir string) error
}

// AssetStore downloads image assets and persists them under a directory.
type AssetStore interface {
	// Save persists the asset under dir, at dir/Filepath() when
	// useSubdirectories is true and dir/Filename() otherwise, creating
	// missing parents, and records the resulting path on the asset. An
	// asset that already has a local path is returned as-is without
	// another download.
	Save(ctx context.Context, asset *ImageAsset, dir string, useSubdirectories bool) (string, error)
}

package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pagemd/pagemd"
)

// Ensure AssetStore implements pagemd.AssetStore at compile time.
var _ pagemd.AssetStore = (*AssetStore)(nil)

// AssetStore downloads image assets and persists them under a directory,
// optionally mirroring the remote URL's directory structure.
type AssetStore struct {
	downloader pagemd.Downloader
}

// NewAssetStore creates an AssetStore that fetches bytes with downloader.
func NewAssetStore(downloader pagemd.Downloader) *AssetStore {
	return &AssetStore{downloader: downloader}
}

// Save persists the asset under dir and records the resulting path on the
// asset. An already-persisted asset is returned as-is without another
// download. A failed download writes nothing and leaves the asset without
// a local path.
func (s *AssetStore) Save(ctx context.Context, asset *pagemd.ImageAsset, dir string, useSubdirectories bool) (string, error) {
	if path, ok := asset.LocalPath(); ok {
		return path, nil
	}

	name := asset.Filename()
	if useSubdirectories {
		name = asset.Filepath()
	}
	if name == "" {
		return "", pagemd.Errorf(pagemd.EINVALID, "cannot derive a file name from %s", asset.URL)
	}

	data, err := s.downloader.Download(ctx, asset.URL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", pagemd.Errorf(pagemd.EWRITE, "failed to create image directory: %v", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", pagemd.Errorf(pagemd.EWRITE, "failed to write %s: %v", fullPath, err)
	}

	if err := asset.SetLocalPath(fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}

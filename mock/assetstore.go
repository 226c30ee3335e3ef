package mock

import (
	"context"

	"github.com/pagemd/pagemd"
)

var _ pagemd.AssetStore = (*AssetStore)(nil)

// AssetStore is a mock implementation of pagemd.AssetStore.
type AssetStore struct {
	SaveFn func(ctx context.Context, asset *pagemd.ImageAsset, dir string, useSubdirectories bool) (string, error)
}

func (s *AssetStore) Save(ctx context.Context, asset *pagemd.ImageAsset, dir string, useSubdirectories bool) (string, error) {
	return s.SaveFn(ctx, asset, dir, useSubdirectories)
}

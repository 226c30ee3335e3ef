package scrape

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/pagemd/pagemd"
	"github.com/pagemd/pagemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustAsset(t *testing.T, url string) *pagemd.ImageAsset {
	t.Helper()
	asset, err := pagemd.NewImageAsset(url, "alt")
	require.NoError(t, err)
	return asset
}

func TestRewriteAssets(t *testing.T) {
	t.Parallel()

	opts := Options{OutputDir: "out", ImagesSubdir: "images"}

	t.Run("replaces every occurrence of the remote URL", func(t *testing.T) {
		t.Parallel()

		asset := mustAsset(t, "https://x.com/a/b.png")
		store := &mock.AssetStore{
			SaveFn: func(ctx context.Context, a *pagemd.ImageAsset, dir string, useSubdirectories bool) (string, error) {
				path := filepath.Join(dir, a.Filepath())
				require.NoError(t, a.SetLocalPath(path))
				return path, nil
			},
		}
		s := &Scraper{Store: store}

		content := "![x](https://x.com/a/b.png) and again https://x.com/a/b.png"
		got := s.rewriteAssets(context.Background(), testLogger(), content, []*pagemd.ImageAsset{asset}, opts)

		assert.Equal(t, "![x](/images/a/b.png) and again /images/a/b.png", got)
	})

	t.Run("does not re-download already persisted assets", func(t *testing.T) {
		t.Parallel()

		asset := mustAsset(t, "https://x.com/a/b.png")
		require.NoError(t, asset.SetLocalPath(filepath.Join("out", "images", "a", "b.png")))

		var saves int
		store := &mock.AssetStore{
			SaveFn: func(ctx context.Context, a *pagemd.ImageAsset, dir string, useSubdirectories bool) (string, error) {
				saves++
				return "", nil
			},
		}
		s := &Scraper{Store: store}

		content := "see https://x.com/a/b.png"
		first := s.rewriteAssets(context.Background(), testLogger(), content, []*pagemd.ImageAsset{asset}, opts)
		second := s.rewriteAssets(context.Background(), testLogger(), content, []*pagemd.ImageAsset{asset}, opts)

		assert.Equal(t, 0, saves)
		assert.Equal(t, first, second)
		assert.Equal(t, "see /images/a/b.png", first)
	})

	t.Run("passes flatten through as useSubdirectories", func(t *testing.T) {
		t.Parallel()

		asset := mustAsset(t, "https://x.com/a/b.png")
		var gotSubdirs bool
		store := &mock.AssetStore{
			SaveFn: func(ctx context.Context, a *pagemd.ImageAsset, dir string, useSubdirectories bool) (string, error) {
				gotSubdirs = useSubdirectories
				path := filepath.Join(dir, a.Filename())
				require.NoError(t, a.SetLocalPath(path))
				return path, nil
			},
		}
		s := &Scraper{Store: store}

		flat := opts
		flat.FlattenImages = true
		got := s.rewriteAssets(context.Background(), testLogger(), "https://x.com/a/b.png", []*pagemd.ImageAsset{asset}, flat)

		assert.False(t, gotSubdirs)
		assert.Equal(t, "/images/b.png", got)
	})

	t.Run("skips assets whose save fails without touching the content", func(t *testing.T) {
		t.Parallel()

		broken := mustAsset(t, "https://x.com/broken.png")
		fine := mustAsset(t, "https://x.com/fine.png")
		store := &mock.AssetStore{
			SaveFn: func(ctx context.Context, a *pagemd.ImageAsset, dir string, useSubdirectories bool) (string, error) {
				if a.URL == broken.URL {
					return "", pagemd.Errorf(pagemd.EFETCH, "HTTP 500 for %s", a.URL)
				}
				path := filepath.Join(dir, a.Filepath())
				require.NoError(t, a.SetLocalPath(path))
				return path, nil
			},
		}
		s := &Scraper{Store: store}

		content := "https://x.com/broken.png https://x.com/fine.png"
		got := s.rewriteAssets(context.Background(), testLogger(), content, []*pagemd.ImageAsset{broken, fine}, opts)

		assert.Equal(t, "https://x.com/broken.png /images/fine.png", got)
	})
}

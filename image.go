package pagemd

import "strings"

// DefaultAltText is used for images whose markup carries no alt attribute.
const DefaultAltText = "Image"

// ImageRef is a raw image reference discovered in a document: the value of
// the source attribute and the accompanying alt text.
type ImageRef struct {
	Alt string
	URL string
}

// ImageAsset represents one image referenced by a scraped page. It derives
// deterministic local file paths from the remote URL and records where the
// image was persisted.
type ImageAsset struct {
	URL string
	Alt string

	localPath string
}

// NewImageAsset creates an ImageAsset for the given remote URL.
// The URL must be non-empty and use the http or https scheme; no network
// check is performed here. An empty alt falls back to DefaultAltText.
func NewImageAsset(url, alt string) (*ImageAsset, error) {
	if url == "" {
		return nil, Errorf(EINVALIDURL, "image URL cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, Errorf(EINVALIDURL, "image URL must start with http:// or https://: %s", url)
	}
	if alt == "" {
		alt = DefaultAltText
	}
	return &ImageAsset{URL: url, Alt: alt}, nil
}

// Filename returns the last path segment of the URL with any query string
// stripped.
//
// Example: https://example.com/a/b/image.jpg?size=large → image.jpg
func (a *ImageAsset) Filename() string {
	segments := strings.Split(a.URL, "/")
	name := segments[len(segments)-1]
	name, _, _ = strings.Cut(name, "?")
	return name
}

// Filepath returns the URL path with the scheme and authority removed and
// any query string stripped, preserving the remote directory structure for
// assets saved with subdirectories.
//
// Example: https://example.com/a/b/image.jpg?x=1 → a/b/image.jpg
func (a *ImageAsset) Filepath() string {
	segments := strings.Split(a.URL, "/")
	if len(segments) <= 3 {
		return ""
	}
	path := strings.Join(segments[3:], "/")
	path, _, _ = strings.Cut(path, "?")
	return path
}

// LocalPath reports where the asset was persisted. ok is false until the
// asset has been saved.
func (a *ImageAsset) LocalPath() (path string, ok bool) {
	return a.localPath, a.localPath != ""
}

// SetLocalPath records the persisted location. It may be called at most
// once per asset; later calls fail with EINVALID.
func (a *ImageAsset) SetLocalPath(path string) error {
	if path == "" {
		return Errorf(EINVALID, "local path cannot be empty")
	}
	if a.localPath != "" {
		return Errorf(EINVALID, "local path already set for %s", a.URL)
	}
	a.localPath = path
	return nil
}

package pagemd

import "context"

// Validator checks URLs before any other scraping work begins.
type Validator interface {
	// Validate fails with EINVALIDURL when url is empty, is not an http or
	// https URL, or is not reachable. The syntactic checks run before any
	// network round trip. Repeated calls re-probe; validity is not cached.
	Validate(ctx context.Context, url string) error
}

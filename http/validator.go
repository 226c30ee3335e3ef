package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pagemd/pagemd"
)

// Ensure Validator implements pagemd.Validator at compile time.
var _ pagemd.Validator = (*Validator)(nil)

// Validator checks that a URL is well formed and reachable. The syntactic
// checks run before any network I/O; reachability is probed with a HEAD
// request on every call, so validity is never cached.
type Validator struct {
	client  *http.Client
	timeout time.Duration
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithProbeTimeout sets the timeout for reachability probes.
// Defaults to DefaultTimeout if not specified.
func WithProbeTimeout(d time.Duration) ValidatorOption {
	return func(v *Validator) {
		v.timeout = d
	}
}

// NewValidator creates a new Validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.client = &http.Client{
		Timeout: v.timeout,
	}

	return v
}

// Validate fails with EINVALIDURL when url is empty, does not use the http
// or https scheme, or is unreachable.
func (v *Validator) Validate(ctx context.Context, url string) error {
	if url == "" {
		return pagemd.Errorf(pagemd.EINVALIDURL, "URL cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return pagemd.Errorf(pagemd.EINVALIDURL, "invalid URL %s: must start with http:// or https://", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return pagemd.Errorf(pagemd.EINVALIDURL, "invalid URL %s: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := v.client.Do(req)
	if err != nil {
		return pagemd.Errorf(pagemd.EINVALIDURL, "URL %s is unreachable: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return pagemd.Errorf(pagemd.EINVALIDURL, "URL %s is unreachable: HTTP %d", url, resp.StatusCode)
	}

	return nil
}

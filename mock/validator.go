package mock

import (
	"context"

	"github.com/pagemd/pagemd"
)

var _ pagemd.Validator = (*Validator)(nil)

// Validator is a mock implementation of pagemd.Validator.
type Validator struct {
	ValidateFn func(ctx context.Context, url string) error
}

func (v *Validator) Validate(ctx context.Context, url string) error {
	return v.ValidateFn(ctx, url)
}

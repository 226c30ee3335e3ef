package pagemd_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pagemd/pagemd"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code of application error", func(t *testing.T) {
		t.Parallel()

		err := pagemd.Errorf(pagemd.ENOCONTENT, "no content region found")
		assert.Equal(t, pagemd.ENOCONTENT, pagemd.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("scraping https://example.com: %w", pagemd.Errorf(pagemd.EFETCH, "HTTP 500"))
		assert.Equal(t, pagemd.EFETCH, pagemd.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, pagemd.EINTERNAL, pagemd.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", pagemd.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message of application error", func(t *testing.T) {
		t.Parallel()

		err := pagemd.Errorf(pagemd.EINVALIDURL, "URL cannot be empty")
		assert.Equal(t, "URL cannot be empty", pagemd.ErrorMessage(err))
	})

	t.Run("returns generic message for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", pagemd.ErrorMessage(errors.New("boom")))
	})
}

package pageask_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/pageask"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pageask.Errorf(pageask.ENOTFOUND, "index %q not found", "helpSearchIndex")

	assert.Equal(t, pageask.ENOTFOUND, pageask.ErrorCode(err))
	assert.Equal(t, "index \"helpSearchIndex\" not found", pageask.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pageask.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pageask.EINTERNAL, pageask.ErrorCode(fmt.Errorf("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("searching: %w", pageask.Errorf(pageask.ETIMEOUT, "timed out"))

	assert.Equal(t, pageask.ETIMEOUT, pageask.ErrorCode(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pageask.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", pageask.ErrorMessage(fmt.Errorf("boom")))
}

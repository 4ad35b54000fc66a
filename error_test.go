package recipex_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/recipex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := recipex.Errorf(recipex.ENOTFOUND, "recipe %q not found", "test")

	assert.Equal(t, recipex.ENOTFOUND, recipex.ErrorCode(err))
	assert.Equal(t, "recipe \"test\" not found", recipex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recipex.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, recipex.EINTERNAL, recipex.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recipex.ErrorMessage(nil))
}

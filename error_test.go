package cnesbeds_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gmfreire/cnesbeds"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", cnesbeds.ErrorCode(nil))
	assert.Equal(t, cnesbeds.EEMPTY, cnesbeds.ErrorCode(cnesbeds.Errorf(cnesbeds.EEMPTY, "no links")))
	assert.Equal(t, cnesbeds.EINTERNAL, cnesbeds.ErrorCode(errors.New("plain")))

	// Wrapped application errors keep their code.
	wrapped := fmt.Errorf("outer: %w", cnesbeds.Errorf(cnesbeds.EUNAVAILABLE, "timeout"))
	assert.Equal(t, cnesbeds.EUNAVAILABLE, cnesbeds.ErrorCode(wrapped))
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", cnesbeds.ErrorMessage(nil))
	assert.Equal(t, "no links", cnesbeds.ErrorMessage(cnesbeds.Errorf(cnesbeds.EEMPTY, "no links")))
	assert.Equal(t, "Internal error.", cnesbeds.ErrorMessage(errors.New("plain")))
}

//go:build !unix && !windows

package outputhandle

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirectIsUnsupported(t *testing.T) {
	restore, err := redirect(2, os.Stderr)
	assert.Nil(t, restore)
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}

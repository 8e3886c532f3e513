//go:build !unix && !windows

package outputhandle

import (
	"errors"
	"fmt"
	"os"
)

// redirect cannot swap descriptors here.
func redirect(fd int, _ *os.File) (func() error, error) {
	return nil, fmt.Errorf("descriptor %d: %w", fd, errors.ErrUnsupported)
}

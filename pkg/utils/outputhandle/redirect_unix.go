//go:build unix

package outputhandle

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirect duplicates sink onto fd and returns a function that puts the
// original descriptor back.
func redirect(fd int, sink *os.File) (func() error, error) {
	saved, err := unix.Dup(fd)
	if err != nil {
		return nil, err
	}
	if err := dup2(int(sink.Fd()), fd); err != nil {
		unix.Close(saved)
		return nil, err
	}
	return func() error {
		defer unix.Close(saved)
		return dup2(saved, fd)
	}, nil
}

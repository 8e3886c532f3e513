//go:build windows

package outputhandle

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// redirect swaps the process's standard handle for sink. Native code that
// resolves the handle per write follows the swap; os.Stdout and os.Stderr
// keep their original handles.
func redirect(fd int, sink *os.File) (func() error, error) {
	var std uint32
	switch fd {
	case 1:
		std = windows.STD_OUTPUT_HANDLE
	case 2:
		std = windows.STD_ERROR_HANDLE
	default:
		return nil, fmt.Errorf("unsupported descriptor %d", fd)
	}

	prev, err := windows.GetStdHandle(std)
	if err != nil {
		return nil, err
	}
	if err := windows.SetStdHandle(std, windows.Handle(sink.Fd())); err != nil {
		return nil, err
	}
	return func() error {
		return windows.SetStdHandle(std, prev)
	}, nil
}

// Package outputhandle wraps the process-wide standard output streams so that
// noisy third-party renderers can be captured for the duration of a call.
//
// Redirecting a standard stream mutates process state, so every redirection
// is serialized by one package-level mutex and is undone before the mutex is
// released, including when the wrapped call fails or panics.
package outputhandle

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

var redirectMu sync.Mutex

// redirectFD is the platform descriptor swap. It reports errors.ErrUnsupported
// where descriptors cannot be redirected.
var redirectFD = redirect

// Handle represents one of the process's standard output streams.
type Handle struct {
	name string
	fd   int
	file func() *os.File
}

var (
	// StandardOutput is the process's standard output stream.
	StandardOutput = &Handle{name: "stdout", fd: 1, file: func() *os.File { return os.Stdout }}
	// StandardError is the process's standard error stream.
	StandardError = &Handle{name: "stderr", fd: 2, file: func() *os.File { return os.Stderr }}
)

func (h *Handle) String() string {
	return h.name
}

// IsTerminal reports whether the stream is attached to a terminal.
func (h *Handle) IsTerminal() bool {
	fd := h.file().Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Redirect points the stream at sink while body runs and restores it
// afterwards. The standard library logger follows stderr redirections too.
// On platforms without descriptor redirection only the logger is redirected.
func (h *Handle) Redirect(sink *os.File, body func() error) (err error) {
	redirectMu.Lock()
	defer redirectMu.Unlock()

	restore, err := redirectFD(h.fd, sink)
	switch {
	case errors.Is(err, errors.ErrUnsupported):
		restore = func() error { return nil }
	case err != nil:
		return fmt.Errorf("failed to redirect %s: %w", h.name, err)
	}

	var prevLog io.Writer
	if h == StandardError {
		prevLog = log.Writer()
		log.SetOutput(sink)
	}

	defer func() {
		if prevLog != nil {
			log.SetOutput(prevLog)
		}
		if rerr := restore(); rerr != nil && err == nil {
			err = fmt.Errorf("failed to restore %s: %w", h.name, rerr)
		}
	}()

	return body()
}

// Capture collects everything written to the stream while body runs. The
// captured bytes are returned even when body fails.
func (h *Handle) Capture(body func() error) ([]byte, error) {
	sink, err := os.CreateTemp("", "createicns-"+h.name+"-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create capture file: %w", err)
	}
	defer func() {
		sink.Close()
		os.Remove(sink.Name())
	}()

	bodyErr := h.Redirect(sink, body)

	captured, err := os.ReadFile(sink.Name())
	if err != nil && bodyErr == nil {
		bodyErr = fmt.Errorf("failed to read captured %s: %w", h.name, err)
	}
	return captured, bodyErr
}

// Package packager turns an iconset into its final on-disk form: a bare
// iconset directory, an ICNS file or a Windows ICO file.
package packager

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/iconset"
	"github.com/provide-io/createicns/pkg/utils/permissions"
)

// Writer writes an iconset to output.
type Writer interface {
	Write(set *iconset.Iconset, output string) error
}

// Direct writes the iconset directory itself at the output path.
type Direct struct{}

// Write implements Writer.
func (Direct) Write(set *iconset.Iconset, output string) error {
	return set.Write(output)
}

// createExclusive opens path for writing, failing if anything already exists
// there.
func createExclusive(path string) (*os.File, error) {
	f, err := permissions.CreateExclusive(path)
	if err != nil {
		return nil, icnserrors.NewWriteError(path, err)
	}
	return f, nil
}

// writeExclusive creates path with O_EXCL and fills it through fill. A
// partially written file is removed.
func writeExclusive(path string, logger hclog.Logger, fill func(io.Writer) error) error {
	f, err := createExclusive(path)
	if err != nil {
		return err
	}

	err = fill(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logger.Warn("⚠️ Failed to remove partial output", "path", path, "error", rmErr)
		}
		var writeErr *icnserrors.WriteError
		if errors.As(err, &writeErr) {
			return err
		}
		return icnserrors.NewWriteError(path, fmt.Errorf("failed to write output: %w", err))
	}
	return nil
}

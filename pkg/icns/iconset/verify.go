package iconset

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/fileinfo"
)

// Verify checks that dir holds every variant of Dimensions as a PNG of the
// right pixel size. All variants are checked; the returned error joins every
// failure.
func Verify(dir string, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if err := fileinfo.NewVerifier(fileinfo.FileExists, fileinfo.IsDirectory).Verify(fileinfo.New(dir)); err != nil {
		logger.Error("❌ Iconset directory missing", "dir", dir, "error", err)
		return err
	}

	logger.Debug("🔍 Verifying iconset", "dir", dir)

	var failures []error
	for _, d := range Dimensions {
		if err := verifyIcon(filepath.Join(dir, d.Filename()), d); err != nil {
			failures = append(failures, err)
			logger.Error("Icon verification failed", "file", d.Filename(), "error", err)
			continue
		}
		logger.Debug("✓ Icon valid", "file", d.Filename(), "size", d.Size())
	}

	if len(failures) > 0 {
		logger.Error("✗ Iconset verification failed", "error_count", len(failures))
		return errors.Join(failures...)
	}
	logger.Info("✓ Iconset verification passed", "dir", dir)
	return nil
}

func verifyIcon(path string, d Dimension) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &icnserrors.PathError{Path: path, Err: icnserrors.ErrDoesNotExist}
		}
		return icnserrors.NewWriteError(path, err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return &icnserrors.DecodeError{Path: path, Err: icnserrors.ErrDecodeFailure, Cause: err}
	}
	if cfg.Width != d.Size() || cfg.Height != d.Size() {
		return &icnserrors.DecodeError{
			Path:   path,
			Width:  cfg.Width,
			Height: cfg.Height,
			Err:    icnserrors.ErrDecodeFailure,
			Cause:  fmt.Errorf("expected %dx%d pixels, got %dx%d", d.Size(), d.Size(), cfg.Width, cfg.Height),
		}
	}
	return nil
}

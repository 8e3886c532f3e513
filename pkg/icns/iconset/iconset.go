// Package iconset builds the ten square PNG variants of an Apple iconset and
// writes them into a directory.
package iconset

import (
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/graphic"
	"github.com/provide-io/createicns/pkg/utils/permissions"
)

// Icon pairs a variant with the image it is rendered from.
type Icon struct {
	Dimension Dimension
	source    *graphic.Image
}

// Filename returns the file name of the icon inside the iconset directory.
func (i Icon) Filename() string {
	return i.Dimension.Filename()
}

// Render resizes the source to the variant's pixel size.
func (i Icon) Render() (*graphic.Image, error) {
	return i.source.Resized(i.Dimension.Size())
}

// Iconset is the ordered collection of icons derived from one source image.
type Iconset struct {
	Icons  []Icon
	logger hclog.Logger
}

// New returns an iconset with one icon per entry of Dimensions. The image
// must be square.
func New(img *graphic.Image, logger hclog.Logger) (*Iconset, error) {
	if err := img.ValidateSquare(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	icons := make([]Icon, len(Dimensions))
	for i, d := range Dimensions {
		icons[i] = Icon{Dimension: d, source: img}
	}
	return &Iconset{Icons: icons, logger: logger}, nil
}

// Write creates dir if needed and writes every icon into it. Existing files
// are never overwritten; the first failure stops the write and files already
// written stay in place.
func (s *Iconset) Write(dir string) error {
	if err := permissions.MkdirAll(dir); err != nil {
		return icnserrors.NewWriteError(dir, err)
	}

	s.logger.Debug("📂 Writing iconset", "dir", dir, "icons", len(s.Icons), "mode", permissions.FormatOctal(permissions.DefaultFilePerms))
	for _, icon := range s.Icons {
		if err := s.writeIcon(dir, icon); err != nil {
			return err
		}
	}
	s.logger.Info("✅ Iconset written", "dir", dir)
	return nil
}

func (s *Iconset) writeIcon(dir string, icon Icon) error {
	rendered, err := icon.Render()
	if err != nil {
		return &icnserrors.WriteError{Path: dir, Err: icnserrors.ErrIOFailure, Cause: err}
	}

	path := filepath.Join(dir, icon.Filename())
	if err := rendered.WritePNG(path); err != nil {
		s.logger.Error("❌ Failed to write icon", "path", path, "error", err)
		return err
	}
	s.logger.Trace("🖼️ Icon written", "file", icon.Filename(), "size", icon.Dimension.Size())
	return nil
}

// ValidateDimensions reports whether every icon can be rendered from its
// source, which requires a square source image.
func (s *Iconset) ValidateDimensions() error {
	for _, icon := range s.Icons {
		if err := icon.source.ValidateSquare(); err != nil {
			return err
		}
	}
	return nil
}

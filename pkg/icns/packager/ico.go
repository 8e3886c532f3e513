package packager

import (
	"image"

	"github.com/hashicorp/go-hclog"
	"github.com/tc-hib/winres"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/iconset"
)

// maxICOSize is the largest image an ICO directory entry can describe.
const maxICOSize = 256

// ICO packs the iconset's variants into a Windows icon file.
type ICO struct {
	logger hclog.Logger
}

// NewICO returns an ICO writer.
func NewICO(logger hclog.Logger) *ICO {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ICO{logger: logger}
}

// Write implements Writer. Each distinct pixel size up to 256 becomes one
// image in the icon.
func (w *ICO) Write(set *iconset.Iconset, output string) error {
	if err := set.ValidateDimensions(); err != nil {
		return err
	}

	images, err := icoImages(set)
	if err != nil {
		return &icnserrors.WriteError{Path: output, Err: icnserrors.ErrIOFailure, Cause: err}
	}
	icon, err := winres.NewIconFromImages(images)
	if err != nil {
		return &icnserrors.WriteError{Path: output, Err: icnserrors.ErrIOFailure, Cause: err}
	}

	w.logger.Debug("🪟 Writing ICO", "path", output, "images", len(images))
	if err := writeExclusive(output, w.logger, icon.SaveICO); err != nil {
		return err
	}
	w.logger.Info("✅ ICO written", "path", output)
	return nil
}

func icoImages(set *iconset.Iconset) ([]image.Image, error) {
	seen := make(map[int]bool)
	var images []image.Image
	for _, icon := range set.Icons {
		size := icon.Dimension.Size()
		if size > maxICOSize || seen[size] {
			continue
		}
		seen[size] = true

		rendered, err := icon.Render()
		if err != nil {
			return nil, err
		}
		images = append(images, rendered.Raster())
	}
	return images, nil
}

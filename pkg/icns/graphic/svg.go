package graphic

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/filetype"
	"github.com/provide-io/createicns/pkg/utils/outputhandle"
)

// decodeSVG rasterizes an SVG document into an intermediate PNG bitmap and
// decodes that bitmap as a raster image. oksvg prints warnings about
// unsupported markup through the standard logger, so parsing and drawing run
// with stderr captured, so nothing inside may log to stderr.
func decodeSVG(path string, logger hclog.Logger) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &icnserrors.DecodeError{Path: path, Err: icnserrors.ErrDocument, Cause: err}
	}

	var bitmap []byte
	diagnostics, err := outputhandle.StandardError.Capture(func() error {
		return guard(func() error {
			var err error
			bitmap, err = rasterizeSVG(data)
			return err
		})
	})
	logDiagnostics(logger, "oksvg", diagnostics)
	if err != nil {
		var decodeErr *icnserrors.DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Path = path
			return nil, decodeErr
		}
		return nil, &icnserrors.DecodeError{Path: path, Err: icnserrors.ErrRenderFailure, Cause: err}
	}

	img, err := decodeRaster(bytes.NewReader(bitmap), filetype.PNG)
	if err != nil {
		return nil, &icnserrors.DecodeError{Path: path, Err: icnserrors.ErrDecodeFailure, Cause: err}
	}
	logger.Debug("✏️ SVG rasterized", "path", path, "size", img.Bounds().Size())
	return FromImage(img), nil
}

func rasterizeSVG(data []byte) ([]byte, error) {
	canvas, err := rasterizeVector(data, largestVariant)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, &icnserrors.DecodeError{Err: icnserrors.ErrRenderFailure, Cause: err}
	}
	return buf.Bytes(), nil
}

// rasterizeVector draws an SVG document onto a transparent canvas. The scale
// comes from ScaleFactor over the view box, with minDimension as the floor
// for the short side.
func rasterizeVector(data []byte, minDimension float64) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, &icnserrors.DecodeError{Err: icnserrors.ErrRenderFailure, Cause: err}
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return nil, &icnserrors.DecodeError{Err: icnserrors.ErrDocument, Cause: errors.New("document has no usable size")}
	}

	scale := ScaleFactor(w, h, minDimension, maxRasterDimension)
	pw, ph := int(math.Round(w*scale)), int(math.Round(h*scale))
	if pw <= 0 || ph <= 0 {
		return nil, &icnserrors.DecodeError{
			Err:   icnserrors.ErrRenderFailure,
			Cause: fmt.Errorf("document size %gx%g cannot be rasterized", w, h),
		}
	}

	icon.SetTarget(0, 0, float64(pw), float64(ph))
	canvas := image.NewRGBA(image.Rect(0, 0, pw, ph))
	scanner := rasterx.NewScannerGV(pw, ph, canvas, canvas.Bounds())
	icon.Draw(rasterx.NewDasher(pw, ph, scanner), 1.0)
	return canvas, nil
}

package graphic

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/filetype"
)

// decodeRaster decodes bitmap data, applying any EXIF orientation.
func decodeRaster(r io.Reader, t filetype.FileType) (image.Image, error) {
	if t == filetype.ICO {
		return ico.Decode(r)
	}
	return imaging.Decode(r, imaging.AutoOrientation(true))
}

func decodeRasterFile(path string, t filetype.FileType) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &icnserrors.DecodeError{Path: path, Err: icnserrors.ErrDecodeFailure, Cause: err}
	}
	defer f.Close()

	img, err := decodeRaster(f, t)
	if err != nil {
		return nil, &icnserrors.DecodeError{Path: path, Err: icnserrors.ErrDecodeFailure, Cause: err}
	}
	return FromImage(img), nil
}

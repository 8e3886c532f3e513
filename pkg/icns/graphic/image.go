// Package graphic decodes source documents into a canonical raster image and
// produces resized copies of it.
package graphic

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/utils/permissions"
)

// Image is a decoded raster image. Its pixels are never mutated after
// construction; resizing always produces a new Image.
type Image struct {
	pix *image.NRGBA
}

// FromImage copies img into a canonical Image.
func FromImage(img image.Image) *Image {
	return &Image{pix: imaging.Clone(img)}
}

// Width returns the width in pixels.
func (i *Image) Width() int {
	return i.pix.Rect.Dx()
}

// Height returns the height in pixels.
func (i *Image) Height() int {
	return i.pix.Rect.Dy()
}

// Raster returns a read-only view of the pixels.
func (i *Image) Raster() image.Image {
	return i.pix
}

// ValidateSquare fails with ErrNonSquareDimensions unless width == height.
func (i *Image) ValidateSquare() error {
	if i.Width() != i.Height() {
		return &icnserrors.DecodeError{
			Width:  i.Width(),
			Height: i.Height(),
			Err:    icnserrors.ErrNonSquareDimensions,
		}
	}
	return nil
}

// Resized returns a new size×size image drawn from i with Catmull-Rom
// resampling.
func (i *Image) Resized(size int) (*Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid target size %d", size)
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	// Draw into the canvas's own bounds so the edges are never clipped.
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), i.pix, i.pix.Bounds(), draw.Src, nil)
	return &Image{pix: canvas}, nil
}

// EncodePNG writes the image as PNG.
func (i *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, i.pix)
}

// WritePNG writes the image as PNG to a new file at path. It never replaces
// an existing file.
func (i *Image) WritePNG(path string) error {
	f, err := permissions.CreateExclusive(path)
	if err != nil {
		return icnserrors.NewWriteError(path, err)
	}
	if err := i.EncodePNG(f); err != nil {
		f.Close()
		return icnserrors.NewWriteError(path, err)
	}
	if err := f.Close(); err != nil {
		return icnserrors.NewWriteError(path, err)
	}
	return nil
}

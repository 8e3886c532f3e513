package graphic

import (
	"errors"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/hashicorp/go-hclog"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/utils/outputhandle"
)

// decodePDF renders the first page of a PDF document, scaled so that its short
// side lands near maxRasterDimension. MuPDF exports the page as SVG, which is
// drawn onto a transparent canvas so areas the page leaves unpainted keep
// zero alpha. Warnings from MuPDF and oksvg are captured from stderr and
// logged at debug level.
func decodePDF(path string, logger hclog.Logger) (*Image, error) {
	var img *Image
	diagnostics, err := outputhandle.StandardError.Capture(func() error {
		return guard(func() error {
			var err error
			img, err = renderFirstPage(path)
			return err
		})
	})
	logDiagnostics(logger, "mupdf", diagnostics)
	if err != nil {
		var decodeErr *icnserrors.DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Path = path
			return nil, decodeErr
		}
		return nil, &icnserrors.DecodeError{Path: path, Err: icnserrors.ErrRenderFailure, Cause: err}
	}
	logger.Debug("📄 PDF page rendered", "path", path, "width", img.Width(), "height", img.Height())
	return img, nil
}

func renderFirstPage(path string) (*Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &icnserrors.DecodeError{Err: icnserrors.ErrDocument, Cause: err}
	}
	defer doc.Close()

	if doc.NumPage() < 1 {
		return nil, &icnserrors.DecodeError{Err: icnserrors.ErrDocument, Cause: errors.New("document has no pages")}
	}

	page, err := doc.SVG(0)
	if err != nil {
		return nil, &icnserrors.DecodeError{Err: icnserrors.ErrRenderFailure, Cause: err}
	}

	canvas, err := rasterizeVector([]byte(flattenSymbols(page)), 0)
	if err != nil {
		return nil, err
	}
	if canvas.Bounds().Empty() {
		return nil, &icnserrors.DecodeError{Err: icnserrors.ErrRenderFailure, Cause: errors.New("empty canvas")}
	}
	return FromImage(canvas), nil
}

// flattenSymbols rewrites <symbol> definitions as groups. MuPDF emits glyph
// outlines as symbols referenced by <use>, and oksvg only expands groups and
// shapes.
func flattenSymbols(page string) string {
	return symbolReplacer.Replace(page)
}

var symbolReplacer = strings.NewReplacer("<symbol", "<g", "</symbol>", "</g>")

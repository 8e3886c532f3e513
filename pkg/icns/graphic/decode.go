package graphic

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/filetype"
)

// Strategy identifies how a file type is turned into a canonical image.
type Strategy int

const (
	// Raster decodes bitmap data directly.
	Raster Strategy = iota
	// PagedDocument renders the first page of a PDF.
	PagedDocument
	// VectorDocument rasterizes an SVG document.
	VectorDocument
)

func (s Strategy) String() string {
	switch s {
	case Raster:
		return "raster"
	case PagedDocument:
		return "paged-document"
	case VectorDocument:
		return "vector-document"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// StrategyFor returns the decode strategy for t. Every decodable type that is
// not a document is handled as a raster image.
func StrategyFor(t filetype.FileType) Strategy {
	switch t {
	case filetype.PDF:
		return PagedDocument
	case filetype.SVG:
		return VectorDocument
	}
	return Raster
}

// Decode reads the file at path as type t and returns its canonical image.
func Decode(path string, t filetype.FileType, logger hclog.Logger) (*Image, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if !filetype.IsDecodable(t) {
		return nil, &icnserrors.DecodeError{
			Path:  path,
			Err:   icnserrors.ErrUnsupportedFormat,
			Cause: fmt.Errorf("type %s", t),
		}
	}

	strategy := StrategyFor(t)
	logger.Debug("🔍 Decoding image", "path", path, "type", t, "strategy", strategy)

	var (
		img *Image
		err error
	)
	switch strategy {
	case PagedDocument:
		img, err = decodePDF(path, logger)
	case VectorDocument:
		img, err = decodeSVG(path, logger)
	default:
		img, err = decodeRasterFile(path, t)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("✅ Image decoded", "path", path, "width", img.Width(), "height", img.Height())
	return img, nil
}

// Source is an input file whose canonical image is decoded at most once.
type Source struct {
	path     string
	fileType filetype.FileType
	decode   func() (*Image, error)
}

// NewSource classifies path by its extension. Unclassifiable or undecodable
// paths fail with ErrUnsupportedFormat.
func NewSource(path string, logger hclog.Logger) (*Source, error) {
	t, ok := filetype.FromPath(path)
	if !ok || !filetype.IsDecodable(t) {
		return nil, &icnserrors.DecodeError{Path: path, Err: icnserrors.ErrUnsupportedFormat}
	}
	return newSource(path, t, func() (*Image, error) {
		return Decode(path, t, logger)
	}), nil
}

func newSource(path string, t filetype.FileType, decode func() (*Image, error)) *Source {
	return &Source{
		path:     path,
		fileType: t,
		decode:   sync.OnceValues(decode),
	}
}

// Path returns the source path.
func (s *Source) Path() string {
	return s.path
}

// FileType returns the classified type of the source.
func (s *Source) FileType() filetype.FileType {
	return s.fileType
}

// Image returns the decoded image, decoding on first use.
func (s *Source) Image() (*Image, error) {
	return s.decode()
}

// guard converts a renderer panic into an error.
func guard(render func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer panic: %v", r)
		}
	}()
	return render()
}

func logDiagnostics(logger hclog.Logger, renderer string, diagnostics []byte) {
	diagnostics = bytes.TrimSpace(diagnostics)
	if len(diagnostics) == 0 {
		return
	}
	logger.Debug("🔇 Suppressed renderer diagnostics", "renderer", renderer, "output", string(diagnostics))
}

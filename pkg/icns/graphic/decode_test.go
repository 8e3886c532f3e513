package graphic

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/filetype"
)

func TestStrategyFor(t *testing.T) {
	assert.Equal(t, PagedDocument, StrategyFor(filetype.PDF))
	assert.Equal(t, VectorDocument, StrategyFor(filetype.SVG))
	assert.Equal(t, Raster, StrategyFor(filetype.PNG))
	assert.Equal(t, Raster, StrategyFor(filetype.ICO))
	assert.Equal(t, "vector-document", VectorDocument.String())
}

func TestDecodeRasterFormats(t *testing.T) {
	dir := t.TempDir()
	square := gradient(48, 48)

	testCases := []struct {
		name     string
		file     string
		fileType filetype.FileType
	}{
		{name: "png", file: "in.png", fileType: filetype.PNG},
		{name: "jpeg", file: "in.jpg", fileType: filetype.JPEG},
		{name: "gif", file: "in.gif", fileType: filetype.GIF},
		{name: "bmp", file: "in.bmp", fileType: filetype.BMP},
		{name: "tiff", file: "in.tiff", fileType: filetype.TIFF},
		{name: "ico", file: "in.ico", fileType: filetype.ICO},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, dir, tc.file, square)

			img, err := Decode(path, tc.fileType, testLogger(t, nil))
			require.NoError(t, err)
			assert.Equal(t, 48, img.Width())
			assert.Equal(t, 48, img.Height())
			assert.NoError(t, img.ValidateSquare())
		})
	}
}

func TestDecodeKeepsNonSquareDimensions(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "wide.png", gradient(40, 20))

	img, err := Decode(path, filetype.PNG, nil)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Width())
	assert.Equal(t, 20, img.Height())
	assert.ErrorIs(t, img.ValidateSquare(), icnserrors.ErrNonSquareDimensions)
}

func TestDecodeCorruptRaster(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.png", "definitely not a png")

	_, err := Decode(path, filetype.PNG, nil)
	require.ErrorIs(t, err, icnserrors.ErrDecodeFailure)

	var decodeErr *icnserrors.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, path, decodeErr.Path)
}

func TestDecodeUnsupportedType(t *testing.T) {
	path := writeFile(t, t.TempDir(), "icon.icns", "icns")

	_, err := Decode(path, filetype.ICNS, nil)
	assert.ErrorIs(t, err, icnserrors.ErrUnsupportedFormat)
}

func TestDecodeSVG(t *testing.T) {
	dir := t.TempDir()
	square := writeFile(t, dir, "square.svg", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64" width="64" height="64">
  <rect x="0" y="0" width="64" height="64" fill="#3366cc"/>
  <circle cx="32" cy="32" r="16" fill="#ffcc00"/>
</svg>`)

	var logs bytes.Buffer
	img, err := Decode(square, filetype.SVG, testLogger(t, &logs))
	require.NoError(t, err)
	// The short side is treated as at least 1024, so a 64pt document is
	// scaled by 4 rather than by 64.
	assert.Equal(t, 256, img.Width())
	assert.Equal(t, 256, img.Height())
	assert.Contains(t, logs.String(), "SVG rasterized")

	wide := writeFile(t, dir, "wide.svg", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">
  <rect x="0" y="0" width="200" height="100" fill="#000"/>
</svg>`)
	img, err = Decode(wide, filetype.SVG, nil)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Width())
	assert.Equal(t, 400, img.Height())
	assert.ErrorIs(t, img.ValidateSquare(), icnserrors.ErrNonSquareDimensions)
}

func TestDecodeSVGSuppressesRendererWarnings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "annotated.svg", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
  <rect x="0" y="0" width="64" height="64" fill="#3366cc"/>
  <text x="1" y="10">hi</text>
  <foo/>
</svg>`)

	// oksvg reports unsupported elements through the standard logger, which
	// writes to stderr unless redirected.
	var stdlog bytes.Buffer
	previous := log.Writer()
	log.SetOutput(&stdlog)
	t.Cleanup(func() { log.SetOutput(previous) })

	var logs bytes.Buffer
	img, err := Decode(path, filetype.SVG, testLogger(t, &logs))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Width())

	assert.Empty(t, stdlog.String())
	assert.Same(t, &stdlog, log.Writer())
	assert.Contains(t, logs.String(), "Suppressed renderer diagnostics")
	assert.Contains(t, logs.String(), "renderer=oksvg")
	assert.Contains(t, logs.String(), "Cannot process svg element text")
	assert.Contains(t, logs.String(), "Cannot process svg element foo")
}

func TestDecodeInvalidSVG(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		content string
	}{
		{name: "garbage", content: "<<<not svg"},
		{name: "no size", content: `<svg xmlns="http://www.w3.org/2000/svg"></svg>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name+".svg", tc.content)

			_, err := Decode(path, filetype.SVG, nil)
			require.Error(t, err)

			var decodeErr *icnserrors.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, path, decodeErr.Path)
		})
	}
}

func TestDecodeMissingSVG(t *testing.T) {
	_, err := Decode("/does/not/exist.svg", filetype.SVG, nil)
	assert.ErrorIs(t, err, icnserrors.ErrDocument)
}

func TestNewSourceClassifies(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "logo.PNG", gradient(16, 16))

	src, err := NewSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, filetype.PNG, src.FileType())
	assert.Equal(t, path, src.Path())

	img, err := src.Image()
	require.NoError(t, err)
	assert.Equal(t, 16, img.Width())
}

func TestNewSourceRejectsUnknownTypes(t *testing.T) {
	for _, name := range []string{"notes.txt", "icon.icns", "noext"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewSource(writeFile(t, t.TempDir(), name, "x"), nil)
			assert.ErrorIs(t, err, icnserrors.ErrUnsupportedFormat)
		})
	}
}

func TestSourceDecodesOnce(t *testing.T) {
	calls := 0
	want := FromImage(gradient(8, 8))
	src := newSource("memo.png", filetype.PNG, func() (*Image, error) {
		calls++
		return want, nil
	})
	assert.Equal(t, 0, calls, "decoding is deferred until first use")

	for i := 0; i < 3; i++ {
		got, err := src.Image()
		require.NoError(t, err)
		assert.Same(t, want, got)
	}
	assert.Equal(t, 1, calls)
}

func TestSourceMemoizesFailure(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	src := newSource("memo.png", filetype.PNG, func() (*Image, error) {
		calls++
		return nil, boom
	})

	_, err := src.Image()
	assert.ErrorIs(t, err, boom)
	_, err = src.Image()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestGuardRecoversPanic(t *testing.T) {
	err := guard(func() error {
		panic("bad path data")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad path data")
}

package iconset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/graphic"
)

func solid(w, h int) *graphic.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 40, B: uint8(x % 256), A: 255})
		}
	}
	return graphic.FromImage(img)
}

func TestDimensions(t *testing.T) {
	expected := []struct {
		name string
		size int
	}{
		{"icon_16x16.png", 16},
		{"icon_16x16@2x.png", 32},
		{"icon_32x32.png", 32},
		{"icon_32x32@2x.png", 64},
		{"icon_128x128.png", 128},
		{"icon_128x128@2x.png", 256},
		{"icon_256x256.png", 256},
		{"icon_256x256@2x.png", 512},
		{"icon_512x512.png", 512},
		{"icon_512x512@2x.png", 1024},
	}

	require.Len(t, Dimensions, len(expected))
	for i, d := range Dimensions {
		t.Run(expected[i].name, func(t *testing.T) {
			assert.Equal(t, expected[i].name, d.Filename())
			assert.Equal(t, expected[i].size, d.Size())
		})
	}
	assert.Equal(t, Dimension{Length: 512, Scale: 2}, Largest())
	assert.Equal(t, "16x16@2x", Dimensions[1].String())
}

func TestNewRejectsNonSquare(t *testing.T) {
	_, err := New(solid(64, 32), nil)
	assert.ErrorIs(t, err, icnserrors.ErrNonSquareDimensions)
}

func TestWrite(t *testing.T) {
	set, err := New(solid(256, 256), nil)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out.iconset")
	require.NoError(t, set.Write(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, len(Dimensions))

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, d := range Dimensions {
		assert.Contains(t, names, d.Filename())

		f, err := os.Open(filepath.Join(dir, d.Filename()))
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err, d.Filename())
		assert.Equal(t, d.Size(), cfg.Width, d.Filename())
		assert.Equal(t, d.Size(), cfg.Height, d.Filename())
	}
}

func TestWriteIntoExistingEmptyDirectory(t *testing.T) {
	set, err := New(solid(32, 32), nil)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, set.Write(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(Dimensions))
}

func TestWriteStopsAtExistingFile(t *testing.T) {
	set, err := New(solid(32, 32), nil)
	require.NoError(t, err)

	dir := t.TempDir()
	blocker := filepath.Join(dir, Dimensions[2].Filename())
	require.NoError(t, os.WriteFile(blocker, []byte("keep"), 0o644))

	err = set.Write(dir)
	require.ErrorIs(t, err, icnserrors.ErrDestinationExists)

	content, err := os.ReadFile(blocker)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content), "existing files are never overwritten")

	// Icons ordered before the blocker were written and are left behind.
	for _, d := range Dimensions[:2] {
		assert.FileExists(t, filepath.Join(dir, d.Filename()))
	}
	assert.NoFileExists(t, filepath.Join(dir, Dimensions[3].Filename()))
}

func TestWriteDirectoryBlockedByFile(t *testing.T) {
	set, err := New(solid(16, 16), nil)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err = set.Write(file)
	assert.Error(t, err)
	var writeErr *icnserrors.WriteError
	assert.ErrorAs(t, err, &writeErr)
}

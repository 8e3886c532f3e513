package iconset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
)

func writtenIconset(t *testing.T) string {
	t.Helper()
	set, err := New(solid(64, 64), nil)
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "icon.iconset")
	require.NoError(t, set.Write(dir))
	return dir
}

func TestVerify(t *testing.T) {
	assert.NoError(t, Verify(writtenIconset(t), nil))
}

func TestVerifyMissingDirectory(t *testing.T) {
	err := Verify(filepath.Join(t.TempDir(), "missing.iconset"), nil)
	assert.ErrorIs(t, err, icnserrors.ErrDoesNotExist)
}

func TestVerifyReportsEveryFailure(t *testing.T) {
	dir := writtenIconset(t)

	require.NoError(t, os.Remove(filepath.Join(dir, Dimensions[0].Filename())))

	// Swap two variants of different size.
	small := filepath.Join(dir, Dimensions[2].Filename())
	large := filepath.Join(dir, Dimensions[9].Filename())
	smallData, err := os.ReadFile(small)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(large, smallData, 0o644))

	require.NoError(t, os.WriteFile(filepath.Join(dir, Dimensions[5].Filename()), []byte("junk"), 0o644))

	err = Verify(dir, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, icnserrors.ErrDoesNotExist)
	assert.ErrorIs(t, err, icnserrors.ErrDecodeFailure)
	assert.Contains(t, err.Error(), "expected 1024x1024 pixels, got 32x32")
	assert.Contains(t, err.Error(), Dimensions[5].Filename())
}

func TestValidateDimensions(t *testing.T) {
	set, err := New(solid(16, 16), nil)
	require.NoError(t, err)
	assert.NoError(t, set.ValidateDimensions())
}

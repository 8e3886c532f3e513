package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/filetype"
)

func TestPrintError(t *testing.T) {
	color.NoColor = true

	testCases := []struct {
		name    string
		err     error
		message string
		fix     string
	}{
		{
			name:    "wrong extension",
			err:     &icnserrors.PathError{Path: "/o.png", Extension: "png", Expected: "icns", Err: icnserrors.ErrWrongExtension},
			message: "error: invalid path extension 'png' for expected output type 'icns'",
			fix:     "fix: Use path extension 'icns'",
		},
		{
			name:    "missing input",
			err:     &icnserrors.PathError{Path: "/in.png", Err: icnserrors.ErrDoesNotExist},
			message: "error: no such file or directory '/in.png'",
		},
		{
			name:    "non square",
			err:     &icnserrors.DecodeError{Path: "/in.png", Width: 3, Height: 2, Err: icnserrors.ErrNonSquareDimensions},
			message: "error: /in.png: image width and height must be equal (got 3x2)",
			fix:     "fix: Crop or pad",
		},
		{
			name:    "unsupported",
			err:     fmt.Errorf("wrapped: %w", &icnserrors.DecodeError{Path: "/a.txt", Err: icnserrors.ErrUnsupportedFormat}),
			message: "error: wrapped: /a.txt: unsupported image format",
			fix:     "fix: Run 'createicns --formats'",
		},
		{
			name:    "iconutil",
			err:     &icnserrors.PackagingError{Tool: "iconutil", Diagnostics: "bad"},
			message: "error: iconutil: an error occurred with the following data: bad",
			fix:     "fix: Retry with '--packager native'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			printError(&out, tc.err)

			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			assert.Equal(t, tc.message, lines[0])
			if tc.fix == "" {
				assert.Len(t, lines, 1)
				return
			}
			if assert.Len(t, lines, 2) {
				assert.True(t, strings.HasPrefix(lines[1], tc.fix), lines[1])
			}
		})
	}
}

func TestFormatsTable(t *testing.T) {
	for _, terminal := range []bool{true, false} {
		out := formatsTable([]filetype.FileType{filetype.PDF, filetype.PNG}, terminal)
		assert.True(t, strings.HasPrefix(out, "Valid Input Formats:\n"))
		assert.Contains(t, out, "Identifier")
		assert.Contains(t, out, "com.adobe.pdf")
		assert.Contains(t, out, "public.png")
		assert.Contains(t, out, "png")
	}
}

func TestFormatsTableBorder(t *testing.T) {
	types := []filetype.FileType{filetype.PNG}
	assert.Contains(t, formatsTable(types, true), "│")
	plain := formatsTable(types, false)
	assert.NotContains(t, plain, "│")
	assert.Contains(t, plain, "|")
}

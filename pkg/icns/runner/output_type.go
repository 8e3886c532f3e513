package runner

import (
	"fmt"
	"strings"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/filetype"
)

// OutputType selects what Create produces.
type OutputType int

const (
	// ICNS produces a single Apple icon file.
	ICNS OutputType = iota
	// Iconset produces the iconset directory only.
	Iconset
	// ICO produces a Windows icon file.
	ICO
	// Infer picks one of the above from the output path extension.
	Infer
)

var outputTypeNames = map[OutputType]string{
	ICNS:    "icns",
	Iconset: "iconset",
	ICO:     "ico",
	Infer:   "infer",
}

func (t OutputType) String() string {
	if name, ok := outputTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("OutputType(%d)", int(t))
}

// ParseOutputType parses one of icns, iconset, ico or infer.
func ParseOutputType(s string) (OutputType, error) {
	for t, name := range outputTypeNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want icns, iconset, ico or infer)", icnserrors.ErrUnsupportedKind, s)
}

// Set implements pflag.Value.
func (t *OutputType) Set(s string) error {
	parsed, err := ParseOutputType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Type implements pflag.Value.
func (t *OutputType) Type() string {
	return "type"
}

// FileType returns the file type written for t. Infer has none.
func (t OutputType) FileType() filetype.FileType {
	switch t {
	case ICNS:
		return filetype.ICNS
	case Iconset:
		return filetype.Iconset
	case ICO:
		return filetype.ICO
	}
	return filetype.FileType{}
}

// inferOutputType maps an output path to an output type: .iconset and .ico
// select those types, anything else is ICNS.
func inferOutputType(output string) OutputType {
	switch t, _ := filetype.FromPath(output); t {
	case filetype.Iconset:
		return Iconset
	case filetype.ICO:
		return ICO
	}
	return ICNS
}

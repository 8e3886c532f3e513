package pkg

import (
	"github.com/provide-io/createicns/pkg/icns/filetype"
	"github.com/provide-io/createicns/pkg/icns/runner"
)

// Run converts input into output. An empty output is derived from input.
func Run(input, output string, kind runner.OutputType, opts ...runner.Option) error {
	return runner.NewCreate(input, output, kind, opts...).Run()
}

// SupportedFormats returns the input types createicns can decode.
func SupportedFormats() []filetype.FileType {
	return runner.ListFormats()
}

// Package runner wires the pipeline together: it resolves paths, checks them,
// decodes the input and hands the iconset to the writer for the requested
// output type.
package runner

import (
	"github.com/hashicorp/go-hclog"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/fileinfo"
	"github.com/provide-io/createicns/pkg/icns/filetype"
	"github.com/provide-io/createicns/pkg/icns/graphic"
	"github.com/provide-io/createicns/pkg/icns/iconset"
	"github.com/provide-io/createicns/pkg/icns/packager"
)

// Option configures a Create.
type Option func(*Create)

// WithLogger sets the logger used by every pipeline stage.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Create) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPackager names the ICNS converter: auto, iconutil or native.
func WithPackager(name string) Option {
	return func(c *Create) {
		c.packager = name
	}
}

// WithWorkspaceRoot sets the directory temporary workspaces are created in.
func WithWorkspaceRoot(dir string) Option {
	return func(c *Create) {
		c.workspaceRoot = dir
	}
}

// Create converts one input image into one output.
type Create struct {
	input         fileinfo.FileInfo
	output        fileinfo.FileInfo
	outputType    OutputType
	packager      string
	workspaceRoot string
	logger        hclog.Logger
}

// NewCreate resolves the output path and type for input. An empty output
// derives the output from the input path; an existing directory that is not
// itself an iconset receives a file named after the input.
func NewCreate(input, output string, t OutputType, opts ...Option) *Create {
	c := &Create{
		input:  fileinfo.New(input),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if t == Infer {
		t = ICNS
		if output != "" {
			t = inferOutputType(output)
		}
	}
	c.outputType = t
	ft := t.FileType()

	switch out := fileinfo.New(output); {
	case output == "":
		c.output = c.input.WithExtension(ft)
	case out.IsDirectory() && !isIconsetPath(out):
		c.output = out.Appending(c.input.Base()).WithExtension(ft)
	default:
		c.output = out
	}

	c.logger.Debug("🧭 Resolved paths", "input", c.input, "output", c.output, "type", c.outputType)
	return c
}

func isIconsetPath(info fileinfo.FileInfo) bool {
	t, ok := info.FileType()
	return ok && t == filetype.Iconset
}

// Input returns the input path.
func (c *Create) Input() string {
	return c.input.Path()
}

// Output returns the resolved output path.
func (c *Create) Output() string {
	return c.output.Path()
}

// OutputType returns the resolved output type; never Infer.
func (c *Create) OutputType() OutputType {
	return c.outputType
}

// Validate runs the pre-flight path checks. Nothing is written.
func (c *Create) Validate() error {
	input := fileinfo.NewVerifier(fileinfo.FileExists, fileinfo.IsDirectory.Inverted())
	if err := input.Verify(c.input); err != nil {
		return err
	}
	if t, ok := c.input.FileType(); !ok || !filetype.IsDecodable(t) {
		return &icnserrors.DecodeError{Path: c.input.Path(), Err: icnserrors.ErrUnsupportedFormat}
	}

	output := fileinfo.NewVerifier(
		fileinfo.FileExists.Inverted(),
		fileinfo.IsDirectory.Inverted(),
		fileinfo.IsFileType(c.outputType.FileType()),
	)
	return output.Verify(c.output)
}

// Run validates, decodes the input and writes the output.
func (c *Create) Run() error {
	if err := c.Validate(); err != nil {
		return err
	}

	source, err := graphic.NewSource(c.input.Path(), c.logger)
	if err != nil {
		return err
	}
	img, err := source.Image()
	if err != nil {
		return err
	}

	set, err := iconset.New(img, c.logger)
	if err != nil {
		return err
	}

	writer, err := c.writer()
	if err != nil {
		return err
	}

	c.logger.Info("🚀 Creating icon", "input", c.input, "output", c.output, "type", c.outputType)
	return writer.Write(set, c.output.Path())
}

func (c *Create) writer() (packager.Writer, error) {
	switch c.outputType {
	case Iconset:
		return packager.Direct{}, nil
	case ICO:
		return packager.NewICO(c.logger), nil
	}

	conv, err := packager.SelectConverter(c.packager, c.logger)
	if err != nil {
		return nil, err
	}
	p := packager.New(conv, c.logger)
	p.Root = c.workspaceRoot
	return p, nil
}

// ListFormats returns the input types the pipeline can decode.
func ListFormats() []filetype.FileType {
	return filetype.InputTypes()
}

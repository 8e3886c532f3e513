package packager

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/createicns/internal/workspace"
	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/iconset"
)

// Packager builds an ICNS file by converting an iconset assembled in a
// private workspace.
type Packager struct {
	Converter Converter
	// Root is the directory workspaces are created in; empty means
	// workspace.Root().
	Root   string
	logger hclog.Logger
}

// New returns a Packager that converts with c.
func New(c Converter, logger hclog.Logger) *Packager {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Packager{Converter: c, logger: logger}
}

// Write implements Writer. The workspace is removed on every path out.
func (p *Packager) Write(set *iconset.Iconset, output string) error {
	return workspace.With(p.Root, p.logger, func(ws *workspace.Workspace) error {
		dir := ws.Join(iconsetName)
		if err := set.Write(dir); err != nil {
			return err
		}
		if err := iconset.Verify(dir, p.logger); err != nil {
			return err
		}

		p.logger.Info("📦 Converting iconset", "converter", p.Converter.Name())
		diagnostics, err := p.Converter.Convert(ws.Path())
		if err != nil {
			return err
		}
		if diagnostics = strings.TrimSpace(diagnostics); diagnostics != "" {
			p.logger.Error("❌ Converter reported an error", "converter", p.Converter.Name(), "output", diagnostics)
			return &icnserrors.PackagingError{Tool: p.Converter.Name(), Diagnostics: diagnostics}
		}

		return p.copyResult(ws.Join(icnsName), output)
	})
}

func (p *Packager) copyResult(src, output string) error {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &icnserrors.PackagingError{Tool: p.Converter.Name(), Cause: errors.New("converter produced no output")}
		}
		return icnserrors.NewWriteError(src, err)
	}
	defer in.Close()

	if err := writeExclusive(output, p.logger, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	}); err != nil {
		return err
	}
	p.logger.Info("✅ ICNS written", "path", output)
	return nil
}

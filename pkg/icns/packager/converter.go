package packager

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jackmordaunt/icns/v3"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/iconset"
	"github.com/provide-io/createicns/pkg/utils/shellparse"
)

const (
	iconsetName = "icon.iconset"
	icnsName    = "icon.icns"

	// DefaultIconutil is the converter command used unless CREATEICNS_ICONUTIL
	// names another.
	DefaultIconutil = "iconutil"
)

// Converter turns <workdir>/icon.iconset into <workdir>/icon.icns.
type Converter interface {
	Name() string
	// Convert returns whatever diagnostic text the conversion produced.
	Convert(workdir string) (string, error)
}

// Iconutil runs Apple's iconutil, or a compatible command.
type Iconutil struct {
	Command []string
	logger  hclog.Logger
}

// NewIconutil returns an Iconutil using CREATEICNS_ICONUTIL, or iconutil.
func NewIconutil(logger hclog.Logger) (*Iconutil, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	command := os.Getenv("CREATEICNS_ICONUTIL")
	if command == "" {
		command = DefaultIconutil
	}

	name, args, err := shellparse.Command(command)
	if err != nil {
		return nil, fmt.Errorf("invalid CREATEICNS_ICONUTIL %q: %w", command, err)
	}
	return &Iconutil{Command: append([]string{name}, args...), logger: logger}, nil
}

// Name implements Converter.
func (c *Iconutil) Name() string {
	return filepath.Base(c.Command[0])
}

// Available reports whether the command can be found.
func (c *Iconutil) Available() bool {
	_, err := exec.LookPath(c.Command[0])
	return err == nil
}

// Convert implements Converter. A non-zero exit status on its own is only
// logged; iconutil reports real failures as text.
func (c *Iconutil) Convert(workdir string) (string, error) {
	argv := append(append([]string{}, c.Command...), "-c", "icns", "-o", icnsName, iconsetName)
	c.logger.Debug("🔧 Running converter", "command", shellparse.Join(argv), "dir", workdir)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = workdir
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		c.logger.Debug("Converter exited", "status", exitErr.ExitCode())
		err = nil
	}
	if err != nil {
		return string(output), &icnserrors.PackagingError{Tool: c.Name(), Cause: err}
	}
	return string(output), nil
}

// Native encodes ICNS files in process from the largest iconset variant.
type Native struct {
	logger hclog.Logger
}

// NewNative returns a Native converter.
func NewNative(logger hclog.Logger) *Native {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Native{logger: logger}
}

// Name implements Converter.
func (*Native) Name() string {
	return "native"
}

// Convert implements Converter.
func (n *Native) Convert(workdir string) (string, error) {
	source := filepath.Join(workdir, iconsetName, iconset.Largest().Filename())
	data, err := os.ReadFile(source)
	if err != nil {
		return "", &icnserrors.PackagingError{Tool: n.Name(), Cause: err}
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", &icnserrors.PackagingError{Tool: n.Name(), Cause: err}
	}

	n.logger.Debug("🔧 Encoding ICNS", "source", source)
	err = writeExclusive(filepath.Join(workdir, icnsName), n.logger, func(w io.Writer) error {
		return icns.Encode(w, img)
	})
	if err != nil {
		return "", &icnserrors.PackagingError{Tool: n.Name(), Cause: err}
	}
	return "", nil
}

// SelectConverter returns the converter named by name: "iconutil", "native"
// or "auto". An empty name falls back to CREATEICNS_PACKAGER, then to auto,
// which picks iconutil when it is installed and native otherwise.
func SelectConverter(name string, logger hclog.Logger) (Converter, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if name == "" {
		name = os.Getenv("CREATEICNS_PACKAGER")
	}

	switch strings.ToLower(name) {
	case "native":
		return NewNative(logger), nil
	case "iconutil":
		iconutil, err := NewIconutil(logger)
		if err != nil {
			return nil, err
		}
		return iconutil, nil
	case "", "auto":
		iconutil, err := NewIconutil(logger)
		if err != nil {
			return nil, err
		}
		if iconutil.Available() {
			logger.Debug("📦 Using iconutil converter", "command", shellparse.Join(iconutil.Command))
			return iconutil, nil
		}
		logger.Debug("📦 iconutil not found, using native converter")
		return NewNative(logger), nil
	}
	return nil, fmt.Errorf("%w: unknown packager %q (want auto, iconutil or native)", icnserrors.ErrUnsupportedKind, name)
}

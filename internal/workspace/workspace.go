// Package workspace manages the private scratch directories the packager
// assembles iconsets in.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
)

// DirPattern is the name pattern of workspace directories.
const DirPattern = "createicns-*"

// Root returns the directory workspaces are created in
func Root() string {
	// Check environment variable first
	if dir := os.Getenv("CREATEICNS_TMPDIR"); dir != "" {
		return dir
	}
	return os.TempDir()
}

// Workspace is a uniquely named temporary directory.
type Workspace struct {
	dir string
}

// Create makes a new, empty workspace below root. An empty root means Root().
func Create(root string) (*Workspace, error) {
	if root == "" {
		root = Root()
	}
	dir, err := os.MkdirTemp(root, DirPattern)
	if err != nil {
		return nil, icnserrors.NewWriteError(root, fmt.Errorf("failed to create workspace: %w", err))
	}
	return &Workspace{dir: dir}, nil
}

// Path returns the workspace directory.
func (w *Workspace) Path() string {
	return w.dir
}

// Join returns a path inside the workspace.
func (w *Workspace) Join(elem ...string) string {
	return filepath.Join(append([]string{w.dir}, elem...)...)
}

// Remove deletes the workspace and everything in it.
func (w *Workspace) Remove() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return icnserrors.NewWriteError(w.dir, fmt.Errorf("failed to remove workspace: %w", err))
	}
	return nil
}

// With runs body inside a fresh workspace below root and removes the workspace
// afterwards, including when body panics. A body error takes precedence over a
// failure to remove the workspace.
func With(root string, logger hclog.Logger, body func(*Workspace) error) (err error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	ws, err := Create(root)
	if err != nil {
		return err
	}
	logger.Debug("🏗️ Workspace created", "dir", ws.Path())

	defer func() {
		rmErr := ws.Remove()
		if rmErr != nil {
			logger.Warn("⚠️ Failed to remove workspace", "dir", ws.Path(), "error", rmErr)
			if err == nil {
				err = rmErr
			}
			return
		}
		logger.Debug("🧹 Workspace removed", "dir", ws.Path())
	}()

	return body(ws)
}

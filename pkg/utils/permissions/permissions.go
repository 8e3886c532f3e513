// Package permissions holds the modes createicns creates files and
// directories with.
package permissions

import (
	"fmt"
	"os"
)

// Output modes. Icons are meant to be shared with bundles and installers, so
// they are world-readable; the process umask still applies.
const (
	DefaultFilePerms os.FileMode = 0o644
	DefaultDirPerms  os.FileMode = 0o755
)

// CreateExclusive creates path for writing with DefaultFilePerms, failing if
// anything already exists at path.
func CreateExclusive(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePerms)
}

// MkdirAll creates dir and any missing parents with DefaultDirPerms.
func MkdirAll(dir string) error {
	return os.MkdirAll(dir, DefaultDirPerms)
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(perm os.FileMode) string {
	return fmt.Sprintf("0%o", perm.Perm())
}

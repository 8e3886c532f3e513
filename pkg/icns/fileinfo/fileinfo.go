// Package fileinfo provides standardized path handling and the pre-flight
// checks that guard every filesystem entry point of the pipeline.
package fileinfo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/provide-io/createicns/pkg/icns/filetype"
)

// FileInfo is an immutable, cleaned filesystem path.
type FileInfo struct {
	path string
}

// New returns a FileInfo for path.
func New(path string) FileInfo {
	return FileInfo{path: filepath.Clean(path)}
}

// Path returns the cleaned path.
func (f FileInfo) Path() string {
	return f.path
}

func (f FileInfo) String() string {
	return f.path
}

// Base returns the last element of the path.
func (f FileInfo) Base() string {
	return filepath.Base(f.path)
}

// Extension returns the path extension without the leading dot.
func (f FileInfo) Extension() string {
	return strings.TrimPrefix(filepath.Ext(f.path), ".")
}

// FileType returns the type associated with the path extension.
func (f FileInfo) FileType() (filetype.FileType, bool) {
	return filetype.FromExtension(f.Extension())
}

// Exists reports whether anything exists at the path. A symlink counts even
// when its target is missing, since writing through it would still land
// somewhere.
func (f FileInfo) Exists() bool {
	_, err := os.Lstat(f.path)
	return err == nil
}

// IsDirectory reports whether the path refers to an existing directory.
func (f FileInfo) IsDirectory() bool {
	info, err := os.Stat(f.path)
	return err == nil && info.IsDir()
}

// Appending returns a FileInfo with component joined onto this path.
func (f FileInfo) Appending(component string) FileInfo {
	return New(filepath.Join(f.path, component))
}

// DeletingExtension returns a FileInfo without the path extension.
func (f FileInfo) DeletingExtension() FileInfo {
	ext := filepath.Ext(f.path)
	if ext == "" || ext == f.path || strings.HasSuffix(f.path, string(filepath.Separator)+ext) {
		return f
	}
	return FileInfo{path: strings.TrimSuffix(f.path, ext)}
}

// AppendingExtension returns a FileInfo with the type's preferred extension
// appended, unless the path already has that type.
func (f FileInfo) AppendingExtension(t filetype.FileType) FileInfo {
	if current, ok := f.FileType(); ok && current == t {
		return f
	}
	ext := t.PreferredExtension()
	if ext == "" {
		return f
	}
	return FileInfo{path: f.path + "." + ext}
}

// WithExtension replaces the path extension with the type's preferred one.
func (f FileInfo) WithExtension(t filetype.FileType) FileInfo {
	return f.DeletingExtension().AppendingExtension(t)
}

package fileinfo

import (
	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/filetype"
)

type checkKind int

const (
	checkExists checkKind = iota
	checkDirectory
	checkFileType
)

// Check is a single declarative condition evaluated against a path.
type Check struct {
	kind     checkKind
	inverted bool
	fileType filetype.FileType
}

var (
	// FileExists requires something to exist at the path.
	FileExists = Check{kind: checkExists}
	// IsDirectory requires the path to be an existing directory.
	IsDirectory = Check{kind: checkDirectory}
)

// IsFileType requires the path extension to classify as t.
func IsFileType(t filetype.FileType) Check {
	return Check{kind: checkFileType, fileType: t}
}

// Inverted returns the negation of c.
func (c Check) Inverted() Check {
	c.inverted = !c.inverted
	return c
}

func (c Check) evaluate(info FileInfo) error {
	switch c.kind {
	case checkExists:
		exists := info.Exists()
		if !c.inverted && !exists {
			return &icnserrors.PathError{Path: info.Path(), Err: icnserrors.ErrDoesNotExist}
		}
		if c.inverted && exists {
			return &icnserrors.PathError{Path: info.Path(), Err: icnserrors.ErrAlreadyExists}
		}
	case checkDirectory:
		isDir := info.IsDirectory()
		if !c.inverted && !isDir {
			return &icnserrors.PathError{Path: info.Path(), Err: icnserrors.ErrIsNotDirectory}
		}
		if c.inverted && isDir {
			return &icnserrors.PathError{Path: info.Path(), Err: icnserrors.ErrIsDirectory}
		}
	case checkFileType:
		current, ok := info.FileType()
		matches := ok && current == c.fileType
		if matches == c.inverted {
			return &icnserrors.PathError{
				Path:      info.Path(),
				Extension: info.Extension(),
				Expected:  c.fileType.PreferredExtension(),
				Err:       icnserrors.ErrWrongExtension,
			}
		}
	}
	return nil
}

// Verifier evaluates an ordered list of checks.
type Verifier struct {
	checks []Check
}

// NewVerifier returns a verifier for checks, evaluated in order.
func NewVerifier(checks ...Check) Verifier {
	return Verifier{checks: checks}
}

// Verify returns the error of the first failing check, or nil.
func (v Verifier) Verify(info FileInfo) error {
	for _, c := range v.checks {
		if err := c.evaluate(info); err != nil {
			return err
		}
	}
	return nil
}

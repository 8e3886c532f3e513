// Package errors defines the failure taxonomy shared by the icon pipeline.
//
// Every failure is reported as one of four typed carriers (PathError,
// DecodeError, WriteError, PackagingError) wrapping a sentinel that callers
// match with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// Path errors 📁
	ErrDoesNotExist    = errors.New("❌ no such file or directory")
	ErrAlreadyExists   = errors.New("❌ already exists")
	ErrIsDirectory     = errors.New("❌ is a directory")
	ErrIsNotDirectory  = errors.New("❌ is not a directory")
	ErrWrongExtension  = errors.New("❌ invalid path extension")
	ErrUnsupportedKind = errors.New("❌ unsupported output type")

	// Decode errors 🖼️
	ErrUnsupportedFormat   = errors.New("❌ unsupported image format")
	ErrDocument            = errors.New("❌ document could not be read")
	ErrRenderFailure       = errors.New("❌ image could not be rendered")
	ErrDecodeFailure       = errors.New("❌ image data could not be decoded")
	ErrNonSquareDimensions = errors.New("❌ image width and height must be equal")

	// Write errors 💾
	ErrDestinationExists = errors.New("❌ destination already exists")
	ErrIOFailure         = errors.New("❌ i/o failure")

	// Packaging errors 📦
	ErrPackaging = errors.New("❌ icon packaging failed")
)

// PathError reports a failed pre-flight check on a filesystem path.
type PathError struct {
	Path string
	// Extension is the path's actual extension, set for ErrWrongExtension.
	Extension string
	// Expected is the preferred extension of the required type, if known.
	Expected string
	Err      error
}

func (e *PathError) Error() string {
	switch e.Err {
	case ErrDoesNotExist:
		return fmt.Sprintf("no such file or directory '%s'", e.Path)
	case ErrAlreadyExists:
		return fmt.Sprintf("'%s' already exists", e.Path)
	case ErrIsDirectory:
		return fmt.Sprintf("'%s' is a directory", e.Path)
	case ErrIsNotDirectory:
		return fmt.Sprintf("'%s' is not a directory", e.Path)
	case ErrWrongExtension:
		if e.Expected == "" {
			return fmt.Sprintf("invalid path extension '%s' for unknown output type", e.Extension)
		}
		return fmt.Sprintf("invalid path extension '%s' for expected output type '%s'", e.Extension, e.Expected)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// DecodeError reports a failure to produce a valid canonical image.
type DecodeError struct {
	Path string
	// Width and Height are set for ErrNonSquareDimensions.
	Width  int
	Height int
	Err    error
	Cause  error
}

func (e *DecodeError) Error() string {
	msg := e.Err.Error()
	if e.Err == ErrNonSquareDimensions {
		msg = fmt.Sprintf("%s (got %dx%d)", msg, e.Width, e.Height)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *DecodeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// WriteError reports a failure while producing output files.
type WriteError struct {
	Path  string
	Err   error
	Cause error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v: %v", e.Path, e.Err, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// PackagingError carries the diagnostic text emitted by an icon converter.
type PackagingError struct {
	Tool        string
	Diagnostics string
	Cause       error
}

func (e *PackagingError) Error() string {
	switch {
	case e.Diagnostics != "":
		return fmt.Sprintf("%s: an error occurred with the following data: %s", e.Tool, e.Diagnostics)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Tool, e.Cause)
	}
	return fmt.Sprintf("%s: an unknown error occurred", e.Tool)
}

func (e *PackagingError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPackaging}
	}
	return []error{ErrPackaging, e.Cause}
}

// NewWriteError classifies an error from creating or writing path.
func NewWriteError(path string, err error) *WriteError {
	if errors.Is(err, fs.ErrExist) {
		return &WriteError{Path: path, Err: ErrDestinationExists, Cause: err}
	}
	return &WriteError{Path: path, Err: ErrIOFailure, Cause: err}
}

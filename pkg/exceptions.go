package pkg

import icnserrors "github.com/provide-io/createicns/pkg/icns/errors"

// Errors callers of Run most often need to tell apart.
var (
	ErrDoesNotExist        = icnserrors.ErrDoesNotExist
	ErrAlreadyExists       = icnserrors.ErrAlreadyExists
	ErrUnsupportedFormat   = icnserrors.ErrUnsupportedFormat
	ErrNonSquareDimensions = icnserrors.ErrNonSquareDimensions
	ErrPackaging           = icnserrors.ErrPackaging
)

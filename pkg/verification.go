package pkg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/createicns/pkg/icns/iconset"
	"github.com/provide-io/createicns/pkg/logging"
)

// VerifyIconset checks that dir is a complete iconset, logging one line per
// variant. A nil logger logs at the configured level.
func VerifyIconset(dir string, logger hclog.Logger) error {
	if logger == nil {
		level, _ := logging.GetLogLevel("")
		var closeLog func() error
		logger, closeLog = logging.OpenLogger("createicns-verify", level)
		defer closeLog()
	}

	logger.Info("Verifying iconset", "dir", dir)
	return iconset.Verify(dir, logger)
}

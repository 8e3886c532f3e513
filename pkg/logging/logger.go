package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	envLogLevel = "CREATEICNS_LOG_LEVEL"
	envJSONLog  = "CREATEICNS_JSON_LOG"
	envLogPath  = "CREATEICNS_LOG_PATH"
)

// NewLogger creates a new hclog logger with standard settings. A nil output
// means stderr.
//
// A level of the form "json" or "json:<level>" switches to JSON output, as
// does CREATEICNS_JSON_LOG=1.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	logger, _ := newLogger(name, level, output)
	return logger
}

// OpenLogger creates a logger writing to stderr, or to the file named by
// CREATEICNS_LOG_PATH. The returned function writes out any partial line and
// closes the file; call it once logging is done.
func OpenLogger(name string, level string) (hclog.Logger, func() error) {
	var output io.Writer = os.Stderr
	var file *os.File
	if logPath := os.Getenv(envLogPath); logPath != "" {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			output, file = f, f
		}
	}

	logger, pw := newLogger(name, level, output)
	return logger, func() error {
		var err error
		if pw != nil {
			err = pw.Flush()
		}
		if file != nil {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}
		return err
	}
}

func newLogger(name string, level string, output io.Writer) (hclog.Logger, *PrefixWriter) {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(envJSONLog) == "1"
	if strings.HasPrefix(level, "json") {
		jsonFormat = true
		if _, actual, ok := strings.Cut(level, ":"); ok {
			level = actual
		} else {
			level = "info"
		}
	}

	var pw *PrefixWriter
	if !jsonFormat {
		pw = NewPrefixWriter("🎨 ", output)
		output = pw
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}), pw
}

// GetLogLevel returns the log level requested on the command line, falling
// back to the environment and then to "warn".
func GetLogLevel(cliLevel string) (level string, source string) {
	if cliLevel != "" {
		return cliLevel, "CLI --log-level"
	}
	if envLevel := os.Getenv(envLogLevel); envLevel != "" {
		return envLevel, envLogLevel
	}
	return "warn", "default"
}

// Package logger configures the global zerolog logger of the benchmark CLI.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogFormatJsonValue = "json"
	LogFormatTextValue = "text"
)

// ErrUnknownFormat indicates a log format other than text or json.
var ErrUnknownFormat = errors.New("logger: unknown log format")

// SetLogLevel installs a global logger writing to stderr.
func SetLogLevel(logLevelStr string, logFormat string) error {
	return SetLogLevelTo(os.Stderr, logLevelStr, logFormat)
}

// SetLogLevelTo installs a global logger writing to w. The debug level adds
// caller information and the process id.
func SetLogLevelTo(w io.Writer, logLevelStr string, logFormat string) error {
	var logLevel zerolog.Level
	switch logLevelStr {
	case zerolog.LevelDebugValue:
		logLevel = zerolog.DebugLevel
	case zerolog.LevelInfoValue:
		logLevel = zerolog.InfoLevel
	case zerolog.LevelWarnValue:
		logLevel = zerolog.WarnLevel
	case zerolog.LevelErrorValue:
		logLevel = zerolog.ErrorLevel
	default:
		return fmt.Errorf("unknown log level %s", logLevelStr)
	}

	var formatWriter io.Writer
	switch logFormat {
	case LogFormatJsonValue:
		formatWriter = w
	case LogFormatTextValue:
		formatWriter = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stderr}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, logFormat)
	}

	ctx := zerolog.New(formatWriter).
		Level(logLevel).
		With().
		Timestamp()
	if logLevel == zerolog.DebugLevel {
		ctx = ctx.Caller().Int("pid", os.Getpid())
	}
	log.Logger = ctx.Logger()

	return nil
}

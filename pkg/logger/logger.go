// Package logger wraps charmbracelet/log with cargoship's level model and
// a process-wide default logger. Import it as `log` and use the package-level
// key/value helpers: log.Debug("resolved", "tag", tag).
package logger

import (
	"fmt"
	"io"
	"os"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/cargoship-ci/cargoship/errors"
	"github.com/cargoship-ci/cargoship/pkg/ui/theme"
)

// LogLevel is a named logging verbosity level.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// Logger wraps a charm logger.
type Logger struct {
	*charm.Logger
}

// NewLogger creates a Logger from an existing charm logger.
func NewLogger(l *charm.Logger) *Logger {
	return &Logger{Logger: l}
}

// ParseLogLevel parses a log level string. An empty string defaults to Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	switch LogLevel(logLevel) {
	case LogLevelOff, LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning:
		return LogLevel(logLevel), nil
	default:
		return LogLevelInfo, fmt.Errorf("%w: '%s'. Supported log levels are Trace, Debug, Info, Warning, Off", errUtils.ErrInvalidLogLevel, logLevel)
	}
}

// SetLogLevel applies a named level to the logger. Off raises the threshold
// above Fatal so nothing is emitted; Trace maps to charm's Debug level.
func (l *Logger) SetLogLevel(level LogLevel) {
	switch level {
	case LogLevelOff:
		l.Logger.SetLevel(charm.FatalLevel + 1)
	case LogLevelTrace, LogLevelDebug:
		l.Logger.SetLevel(charm.DebugLevel)
	case LogLevelInfo:
		l.Logger.SetLevel(charm.InfoLevel)
	case LogLevelWarning:
		l.Logger.SetLevel(charm.WarnLevel)
	}
}

// GetCharmLogger returns a charm logger writing to stderr with the
// cargoship theme applied.
func GetCharmLogger() *charm.Logger {
	return GetCharmLoggerWithOutput(os.Stderr)
}

// GetCharmLoggerWithOutput returns a themed charm logger writing to w.
func GetCharmLoggerWithOutput(w io.Writer) *charm.Logger {
	logger := charm.New(w)
	logger.SetStyles(theme.GetLogStyles())
	logger.SetReportTimestamp(false)
	return logger
}

// OpenLogFile resolves a configured log destination to a writer.
// Supports /dev/stderr (default), /dev/stdout, and regular file paths.
func OpenLogFile(file string) (io.Writer, func() error, error) {
	switch file {
	case "", "/dev/stderr":
		return os.Stderr, func() error { return nil }, nil
	case "/dev/stdout":
		return os.Stdout, func() error { return nil }, nil
	default:
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
}

package logging

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// ConsoleLogger writes leveled log messages to a writer, normally stderr.
// charmbracelet/log serializes writes, so it is safe for concurrent use.
type ConsoleLogger struct {
	logger *log.Logger
}

// NewConsoleLogger creates a new ConsoleLogger writing to w.
// If verbose is true, Verbose() calls produce debug-level output;
// otherwise they are dropped.
func NewConsoleLogger(w io.Writer, verbose bool) *ConsoleLogger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return &ConsoleLogger{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: verbose,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Warn logs recoverable problems.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

var _ readmegen.Logger = (*ConsoleLogger)(nil)

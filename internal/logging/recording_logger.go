package logging

import (
	"fmt"
	"sync"

	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// Entry is one message captured by RecordingLogger.
type Entry struct {
	Level   string
	Message string
}

// RecordingLogger keeps every message in memory so tests can assert on
// warnings and error causes.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *RecordingLogger) Verbose(format string, args ...interface{}) {
	l.record("verbose", format, args)
}

func (l *RecordingLogger) Info(format string, args ...interface{}) {
	l.record("info", format, args)
}

func (l *RecordingLogger) Warn(format string, args ...interface{}) {
	l.record("warn", format, args)
}

func (l *RecordingLogger) Error(format string, args ...interface{}) {
	l.record("error", format, args)
}

// Entries returns a copy of the captured messages at the given level,
// or all messages when level is empty.
func (l *RecordingLogger) Entries(level string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Entry
	for _, e := range l.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Messages returns the text of the captured messages at the given level.
func (l *RecordingLogger) Messages(level string) []string {
	entries := l.Entries(level)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

var _ readmegen.Logger = (*RecordingLogger)(nil)

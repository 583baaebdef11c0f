// Package testlogger provides a test logger implementation for testing
package testlogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// LogEntry represents a single log entry
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]any
}

// sink is shared between a TestLogger and the loggers derived from it
type sink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// TestLogger implements log.Logger for testing purposes. Loggers returned by
// WithFields record into the same entry list with their fields attached.
type TestLogger struct {
	sink   *sink
	fields map[string]any
}

// New creates a new TestLogger
func New() *TestLogger {
	return &TestLogger{
		sink: &sink{entries: make([]LogEntry, 0)},
	}
}

// log adds a log entry
func (l *TestLogger) log(level, format string, args ...any) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.sink.entries = append(l.sink.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  l.fields,
	})
}

// Debug implements log.Logger
func (l *TestLogger) Debug(args ...any) {
	l.log("DEBUG", fmt.Sprint(args...))
}

// Debugf implements log.Logger
func (l *TestLogger) Debugf(format string, args ...any) {
	l.log("DEBUG", format, args...)
}

// Debugln implements log.Logger
func (l *TestLogger) Debugln(args ...any) {
	l.log("DEBUG", fmt.Sprintln(args...))
}

// Info implements log.Logger
func (l *TestLogger) Info(args ...any) {
	l.log("INFO", fmt.Sprint(args...))
}

// Infof implements log.Logger
func (l *TestLogger) Infof(format string, args ...any) {
	l.log("INFO", format, args...)
}

// Infoln implements log.Logger
func (l *TestLogger) Infoln(args ...any) {
	l.log("INFO", fmt.Sprintln(args...))
}

// Warn implements log.Logger
func (l *TestLogger) Warn(args ...any) {
	l.log("WARN", fmt.Sprint(args...))
}

// Warnf implements log.Logger
func (l *TestLogger) Warnf(format string, args ...any) {
	l.log("WARN", format, args...)
}

// Warnln implements log.Logger
func (l *TestLogger) Warnln(args ...any) {
	l.log("WARN", fmt.Sprintln(args...))
}

// Error implements log.Logger
func (l *TestLogger) Error(args ...any) {
	l.log("ERROR", fmt.Sprint(args...))
}

// Errorf implements log.Logger
func (l *TestLogger) Errorf(format string, args ...any) {
	l.log("ERROR", format, args...)
}

// Errorln implements log.Logger
func (l *TestLogger) Errorln(args ...any) {
	l.log("ERROR", fmt.Sprintln(args...))
}

// Fatal implements log.Logger
func (l *TestLogger) Fatal(args ...any) {
	l.log("FATAL", fmt.Sprint(args...))
}

// Fatalf implements log.Logger
func (l *TestLogger) Fatalf(format string, args ...any) {
	l.log("FATAL", format, args...)
}

// Fatalln implements log.Logger
func (l *TestLogger) Fatalln(args ...any) {
	l.log("FATAL", fmt.Sprintln(args...))
}

// WithFields implements log.Logger. Fields are key/value pairs.
func (l *TestLogger) WithFields(fields ...any) log.Logger {
	merged := make(map[string]any, len(l.fields)+len(fields)/2)
	for k, v := range l.fields {
		merged[k] = v
	}

	for i := 0; i+1 < len(fields); i += 2 {
		merged[fmt.Sprint(fields[i])] = fields[i+1]
	}

	return &TestLogger{sink: l.sink, fields: merged}
}

// Sync implements log.Logger
func (l *TestLogger) Sync() error {
	return nil
}

// WithDefaultMessageTemplate implements log.Logger
func (l *TestLogger) WithDefaultMessageTemplate(template string) log.Logger {
	return l
}

// GetEntries returns all log entries
func (l *TestLogger) GetEntries() []LogEntry {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	entries := make([]LogEntry, len(l.sink.entries))
	copy(entries, l.sink.entries)

	return entries
}

// Clear clears all log entries
func (l *TestLogger) Clear() {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.entries = make([]LogEntry, 0)
}

// Count returns the number of log entries for the given level
func (l *TestLogger) Count(level string) int {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	count := 0

	for _, entry := range l.sink.entries {
		if entry.Level == level {
			count++
		}
	}

	return count
}

// Contains returns true if the log contains a message that contains all the given strings
func (l *TestLogger) Contains(level string, substrings ...string) bool {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	for _, entry := range l.sink.entries {
		if entry.Level == level {
			allFound := true

			for _, s := range substrings {
				if !strings.Contains(entry.Message, s) {
					allFound = false
					break
				}
			}

			if allFound {
				return true
			}
		}
	}

	return false
}

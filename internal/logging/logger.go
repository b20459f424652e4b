// Package logging wraps a package-level charmbracelet logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
)

// ParseLevel converts a level name (debug, info, warn, error) to a log level.
func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("failed to parse log level %q: %w", level, err)
	}
	return lvl, nil
}

// Init directs log output to w at the given level.
func Init(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           lvl,
		Prefix:          "moodlog",
	})
	return nil
}

// InitFile appends log output to the file at path, creating parent
// directories. Used while a TUI owns the terminal.
func InitFile(path, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
	})
	return nil
}

// Close releases the log file, if any. Later calls log nowhere until Init.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	logger = nil
}

func closeFileLocked() {
	if logFile == nil {
		return
	}
	if cerr := logFile.Close(); cerr != nil {
		// Best-effort close of the log file.
		_ = cerr
	}
	logFile = nil
}

func current() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	if l := current(); l != nil {
		l.Debug(msg, keyvals...)
	}
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	if l := current(); l != nil {
		l.Info(msg, keyvals...)
	}
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	if l := current(); l != nil {
		l.Warn(msg, keyvals...)
	}
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	if l := current(); l != nil {
		l.Error(msg, keyvals...)
	}
}

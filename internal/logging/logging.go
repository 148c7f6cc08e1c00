// Package logging provides the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It discards output until Init is called.
var L = clog.New(io.Discard)

var logFile *os.File

// ParseLevel maps a config level name to a log level.
func ParseLevel(name string) (clog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return clog.DebugLevel, nil
	case "", "info":
		return clog.InfoLevel, nil
	case "warn", "warning":
		return clog.WarnLevel, nil
	case "error":
		return clog.ErrorLevel, nil
	default:
		return clog.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// Init points L at the file at path, creating parent directories. On
// failure L keeps discarding and the error is returned.
func Init(level clog.Level, path string) error {
	if path == "" {
		return fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	L = clog.NewWithOptions(f, clog.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "typefast",
	})
	return nil
}

// Close releases the log file opened by Init.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	L = clog.New(io.Discard)
	return err
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}

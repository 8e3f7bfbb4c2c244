// Package logging provides the application-wide diagnostic logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr until SetOutput or
// OpenFile redirects it.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "lipi"})

// SetOutput replaces the logger with one writing to w.
func SetOutput(w io.Writer, verbose bool) {
	L = clog.NewWithOptions(w, clog.Options{
		Prefix:          "lipi",
		ReportTimestamp: true,
	})
	if verbose {
		L.SetLevel(clog.DebugLevel)
	}
}

// OpenFile redirects the logger to the file at path, creating parent
// directories as needed. The caller closes the returned file.
//
// The interactive view owns the terminal, so it logs here instead of stderr.
func OpenFile(path string, verbose bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	SetOutput(f, verbose)
	return f, nil
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

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DiscardLogger returns a logger that drops everything. The alt screen owns
// stderr while a game runs.
func DiscardLogger() *log.Logger {
	return log.New(io.Discard)
}

// OpenLogFile returns a logger writing to path, or a discarding logger when
// path is empty. The returned closer must be called on exit.
func OpenLogFile(path string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return DiscardLogger(), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("tui: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "forge",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

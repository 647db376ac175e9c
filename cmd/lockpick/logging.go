package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logDir      = "logs"
	logFileName = "lockpick.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes every logger to a rotated file under logDir when debug is set,
// and discards otherwise. Never writes to stdout/stderr: the terminal UI owns them
// Returns the open log file, nil when discarding
func setupLogging(debug bool) (*log.Logger, *os.File) {
	if !debug {
		stdlog.SetOutput(io.Discard)
		return log.New(io.Discard), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		stdlog.SetOutput(io.Discard)
		return log.New(io.Discard), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(logDir, fmt.Sprintf("lockpick-%s.log", stamp))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		stdlog.SetOutput(io.Discard)
		return log.New(io.Discard), nil
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          "lockpick",
		Level:           log.DebugLevel,
	})
	stdlog.SetOutput(f)
	stdlog.SetFlags(stdlog.LstdFlags | stdlog.Lmicroseconds)
	return logger, f
}

package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "xochi.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog and the standard logger to dir/xochi.log when debug is set
// The terminal owns stdout and stderr while the game runs, so logs never go there
// An oversized log is rotated aside with a timestamp suffix
func setupLogging(debug bool, dir string, level slog.Level) (*os.File, *slog.Logger) {
	if !debug {
		log.SetOutput(io.Discard)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(logger)
		return nil, logger
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return setupLogging(false, dir, level)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("xochi-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return setupLogging(false, dir, level)
	}

	log.SetOutput(f)
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return f, logger
}

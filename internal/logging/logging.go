// SPDX-License-Identifier: EPL-2.0

// Package logging configures the process wide slog logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel is returned for a level outside Levels.
var ErrUnknownLevel = errors.New("unexpected log level")

// Levels lists the accepted level names.
var Levels = []string{"none", "error", "warn", "info", "debug"}

// New builds a logger for level. With an empty file the logger writes text
// to w, otherwise JSON to the truncated file, which is returned so the caller
// can close it.
func New(level, file string, w io.Writer) (*slog.Logger, *os.File, error) {
	var opts slog.HandlerOptions

	switch strings.ToLower(level) {
	case "none":
		return slog.New(slog.DiscardHandler), nil, nil
	case "error":
		opts.Level = slog.LevelError
	case "warn":
		opts.Level = slog.LevelWarn
	case "info":
		opts.Level = slog.LevelInfo
	case "debug":
		opts.Level = slog.LevelDebug
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	if file == "" {
		return slog.New(slog.NewTextHandler(w, &opts)), nil, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return slog.New(slog.NewJSONHandler(f, &opts)), f, nil
}

// ConfigureDefaultLogger installs the logger built by New as slog's default.
// A returned file must be closed once logging is done:
//
//	logFile, err := logging.ConfigureDefaultLogger("info", "", os.Stderr)
//	if logFile != nil {
//	    defer logFile.Close()
//	}
func ConfigureDefaultLogger(level, file string, w io.Writer) (*os.File, error) {
	logger, f, err := New(level, file, w)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	return f, nil
}

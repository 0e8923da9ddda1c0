// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from string settings
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/msto63/helperutil/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name written with every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text", "console" or "logfmt" (default: json)
	Format string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "json",
	}
}

// NewLogger creates a logger from cfg. Unknown levels fall back to info and
// unknown formats to JSON.
func NewLogger(cfg LoggerConfig) *log.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := log.ParseFormat(cfg.Format)
	if err != nil {
		format = log.FormatJSON
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewCLILogger creates the logger used by command line tools. verbose
// lowers the level to debug regardless of level.
func NewCLILogger(name, level, format string, verbose bool) *log.Logger {
	cfg := DefaultLoggerConfig(name)
	if level != "" {
		cfg.Level = level
	}
	if format != "" {
		cfg.Format = format
	}
	if verbose {
		cfg.Level = "debug"
	}
	return NewLogger(cfg)
}

// parseLevel converts a string level to log.Level
func parseLevel(level string) log.Level {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.LevelInfo
	}
	return parsed
}

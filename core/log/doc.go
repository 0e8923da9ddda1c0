// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides the structured logger used across
//              helperutil.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

// Package log provides structured logging for helperutil.
//
// A Logger is immutable from the caller's point of view: every With* method
// returns a configured copy, so loggers can be derived per operation without
// affecting the parent.
//
//	logger := log.New().WithName("osx").WithCorrelationID(id)
//	logger.Debug("process finished", log.Int("exit_code", 0))
//
// Output formats are JSON (default), text, console and logfmt. The default
// logger writes to stderr so it never mixes with command output on stdout.
package log

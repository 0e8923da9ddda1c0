// File: doc.go
// Title: Package Documentation for osx
// Description: Package osx detects the host operating system and runs
//              external commands with captured output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-15

// Package osx detects the operating system family and runs commands.
//
// GetOS classifies runtime.GOOS once per process. DetectOS applies the same
// rules to any identifier, checking "dar" before "win" so that "Darwin" is
// never mistaken for Windows.
//
// Exec and ExecContext parse the command string as a shell command line. A
// single plain command is split into words using POSIX quoting and $VAR
// expansion and started directly. Pipelines, && and || lists, redirections,
// subshells and command substitutions run through sh -c (cmd /C on Windows).
// ExecOptions.Shell forces the shell path.
//
//	res, err := osx.Exec("echo hello")
//	// res.Stdout == "hello\n", res.ExitCode == 0
//
// A non-zero exit status is reported in Result.ExitCode with a nil error.
// Errors are reserved for commands that could not be started and for
// timeouts; a timeout returns the output captured so far together with a
// TIMEOUT error.
package osx

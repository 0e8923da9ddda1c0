// File: exec.go
// Title: Command Execution
// Description: Runs an external command, captures stdout and stderr and
//              reports the exit status, with optional timeout, working
//              directory and extra environment.
// Author: msto63
// Version: v0.1.2
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Added timeout, shell mode and exec logging
// - 2026-10-15 v0.1.2: Shell syntax runs through the platform shell;
//                      failed runs are logged at debug level

package osx

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"

	huerror "github.com/msto63/helperutil/core/error"
	huerrors "github.com/msto63/helperutil/core/errors"
	"github.com/msto63/helperutil/core/log"
	"github.com/msto63/helperutil/utils/stringx"
)

// waitDelay bounds how long Wait blocks on pipes held open by grandchildren
// after the child has been killed
const waitDelay = 2 * time.Second

// Result is the outcome of one command run
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// ExecOptions adjusts how a command is run. The zero value waits
// indefinitely, inherits the working directory and environment and logs to
// the default logger.
type ExecOptions struct {
	Timeout time.Duration
	Dir     string
	Env     []string // extra KEY=VALUE pairs appended to the inherited environment
	Shell   bool     // always use the platform shell, skipping syntax detection
	Logger  *log.Logger
}

// Exec runs command and waits for it to finish
func Exec(command string) (*Result, error) {
	return ExecContext(context.Background(), command)
}

// ExecContext runs command, killing it when ctx is done or the timeout
// expires. Only the first ExecOptions is used.
func ExecContext(ctx context.Context, command string, opts ...ExecOptions) (*Result, error) {
	var o ExecOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	if stringx.IsBlank(command) {
		return nil, huerrors.InvalidInput(huerrors.ModuleOsx, "exec", command, "a non-empty command")
	}

	argv, err := commandLine(command, o.Shell)
	if err != nil {
		return nil, huerrors.InvalidFormat(huerrors.ModuleOsx, "exec", command, "shell words").
			WithDetail("reason", err.Error())
	}

	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	logger := o.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	timer := logger.WithField("exec_id", uuid.NewString()).
		StartTimer("exec").
		WithFailureLevel(log.LevelDebug).
		WithField("command", command)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Dir = o.Dir
	cmd.WaitDelay = waitDelay
	if len(o.Env) > 0 {
		cmd.Env = append(os.Environ(), o.Env...)
	}

	start := time.Now()
	runErr := cmd.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runErr == nil {
		timer.StopWithResult(true, result.ExitCode)
		return result, nil
	}

	var execErr *huerror.Error
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		execErr = huerrors.OsxTimeout(command, ctx.Err()).
			WithDetail("timeout", o.Timeout.String())
	case ctx.Err() != nil:
		execErr = huerrors.OperationFailed(huerrors.ModuleOsx, "exec", ctx.Err()).
			WithDetail("command", command)
	case errors.As(runErr, &exitErr):
		timer.StopWithResult(true, result.ExitCode)
		return result, nil
	default:
		timer.WithField("error", runErr.Error()).StopWithResult(false, nil)
		return nil, huerrors.OsxSpawnFailed(argv[0], runErr).WithDetail("command", command)
	}

	timer.WithField("error", execErr.Error()).StopWithResult(false, result.ExitCode)
	return result, execErr
}

// commandLine returns the argv used to run command. A single simple command
// is split into words and started directly; anything else goes through the
// platform shell.
func commandLine(command string, viaShell bool) ([]string, error) {
	if !viaShell {
		simple, err := isSimpleCommand(command)
		if err != nil {
			return nil, err
		}
		viaShell = !simple
	}
	if viaShell {
		if GetOS() == Windows {
			return []string{"cmd", "/C", command}, nil
		}
		return []string{"/bin/sh", "-c", command}, nil
	}

	argv, err := shell.Fields(command, os.Getenv)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, errors.New("command expands to no words")
	}
	return argv, nil
}

// isSimpleCommand reports whether command is exactly one program invocation
// without pipes, lists, redirections, assignments or substitutions
func isSimpleCommand(command string) (bool, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return false, err
	}
	if len(file.Stmts) != 1 {
		return false, nil
	}

	stmt := file.Stmts[0]
	if stmt.Negated || stmt.Background || stmt.Coprocess || len(stmt.Redirs) > 0 {
		return false, nil
	}
	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(call.Assigns) > 0 {
		return false, nil
	}

	simple := true
	syntax.Walk(call, func(node syntax.Node) bool {
		switch node.(type) {
		case *syntax.CmdSubst, *syntax.ProcSubst, *syntax.ExtGlob:
			simple = false
		}
		return simple
	})
	return simple, nil
}

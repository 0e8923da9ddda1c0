// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: exec command: run a process and relay its output
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"

	"github.com/msto63/helperutil/utils/osx"
)

func newExecCmd(a *app) *cobra.Command {
	var (
		shellMode bool
		dir       string
		env       []string
	)

	cmd := &cobra.Command{
		Use:   "exec COMMAND [ARG...]",
		Short: "Run a command and relay its output and exit status",
		Long: `Runs COMMAND, prints its standard output and standard error and exits
with its exit status. A single argument is parsed as a shell command line:
a plain command is started directly, while pipes, lists, redirections and
substitutions run through /bin/sh -c (or cmd /C on Windows). Several
arguments are passed as they are. --shell always uses the system shell.

A --timeout of 0 waits indefinitely. When the timeout fires the process is
killed, the output collected so far is printed and the command fails.`,
		Example: `  helperutil exec -- ls -la
  helperutil exec --timeout 5s -- sleep 10
  helperutil exec 'ps aux | grep helperutil'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := osx.ExecOptions{
				Timeout: a.durationSetting(cmd, "timeout", "exec.timeout", 0),
				Dir:     dir,
				Env:     env,
				Shell:   shellMode,
				Logger:  a.logger,
			}

			res, err := osx.ExecContext(cmd.Context(), commandString(args, shellMode), opts)
			if res != nil {
				fmt.Fprint(cmd.OutOrStdout(), res.Stdout)
				fmt.Fprint(cmd.ErrOrStderr(), res.Stderr)
			}
			if err != nil {
				return err
			}
			if res.ExitCode != 0 {
				return &ExitCodeError{Code: res.ExitCode}
			}
			return nil
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().Duration("timeout", 0, "kill the command after this long (0: no limit)")
	cmd.Flags().BoolVar(&shellMode, "shell", false, "run through the system shell")
	cmd.Flags().StringVar(&dir, "dir", "", "working directory")
	cmd.Flags().StringArrayVarP(&env, "env", "e", nil, "extra KEY=VALUE environment entry (repeatable)")

	return cmd
}

// commandString turns the argument list into the command line osx.Exec
// splits again. Separate arguments are quoted so they survive that split.
func commandString(args []string, shellMode bool) string {
	if shellMode || len(args) == 1 {
		return strings.Join(args, " ")
	}

	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			q = arg
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}

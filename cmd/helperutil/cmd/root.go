// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: Root command, persistent flags and configuration loading
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/core/config"
	huerror "github.com/msto63/helperutil/core/error"
	huerrors "github.com/msto63/helperutil/core/errors"
	"github.com/msto63/helperutil/core/log"
	"github.com/msto63/helperutil/pkg/logging"
)

// configRules checks the keys the subcommands read their defaults from
var configRules = config.ValidationRules{
	"uid.length":     {Type: "int", Min: config.Bound(1)},
	"pin.digits":     {Type: "int", Min: config.Bound(0)},
	"mask.start":     {Type: "int", Min: config.Bound(0)},
	"mask.char":      {Type: "string", Min: config.Bound(1), Max: config.Bound(1)},
	"trim.length":    {Type: "int", Min: config.Bound(0)},
	"trim.delimiter": {Type: "string"},
	"exec.timeout":   {Type: "duration"},
	"log.level":      {Type: "string"},
	"log.format":     {Type: "string"},
}

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	config *config.Config
	logger *log.Logger
}

// ExitCodeError makes the process exit with Code without printing anything
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCmd builds the complete command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "helperutil",
		Short: "Small string, time, number and process helpers",
		Long: `helperutil exposes the helperutil library on the command line.

Groups:
  identifiers  uid, pin
  formatting   pad, trim, mask, contains, fullname, time12, round
  time         daterange, timezone
  system       os, exec
  documents    validate

Defaults for most flags can be set in helperutil.toml or helperutil.yaml
(working directory or user config directory) and overridden with
HELPERUTIL_* environment variables, e.g. HELPERUTIL_MASK_CHAR=#.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./helperutil.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json, text, console or logfmt")

	rootCmd.AddCommand(
		newUIDCmd(a),
		newPinCmd(a),
		newPadCmd(a),
		newTrimCmd(a),
		newMaskCmd(a),
		newContainsCmd(a),
		newFullNameCmd(a),
		newTime12Cmd(a),
		newRoundCmd(a),
		newDateRangeCmd(a),
		newTimezoneCmd(a),
		newOSCmd(a),
		newExecCmd(a),
		newValidateCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// Execute runs the CLI and prints any error to stderr
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		var exitErr *ExitCodeError
		if !errors.As(err, &exitErr) {
			printError(rootCmd.ErrOrStderr(), err)
		}
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func (a *app) setup(logOutput io.Writer) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}
	a.config = cfg

	logger := logging.NewCLILogger("helperutil",
		cfg.GetString("log.level", "warn"),
		cfg.GetString("log.format", "text"),
		a.verbose)
	if a.logFormat != "" {
		format, err := log.ParseFormat(a.logFormat)
		if err != nil {
			return huerrors.InvalidInput(huerrors.ModuleConfig, "log-format", a.logFormat, "json, text, console or logfmt")
		}
		logger = logger.WithFormat(format)
	}
	a.logger = logger.WithOutput(logOutput)
	log.SetDefault(a.logger)

	a.logger.Debug("configuration loaded", log.Fields{
		"path":   cfg.FilePath(),
		"format": cfg.Format().String(),
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

// intSetting returns the flag value when it was given, else the config
// value for key, else def
func (a *app) intSetting(cmd *cobra.Command, flag, key string, def int) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	return a.config.GetInt(key, def)
}

func (a *app) stringSetting(cmd *cobra.Command, flag, key, def string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return a.config.GetString(key, def)
}

func (a *app) durationSetting(cmd *cobra.Command, flag, key string, def time.Duration) time.Duration {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetDuration(flag)
		return v
	}
	return a.config.GetDuration(key, def)
}

// printError writes err to w. Errors raised by the environment rather than
// by bad input carry their severity in the label.
func printError(w io.Writer, err error) {
	label := "Error:"
	if severity := huerror.GetSeverity(err); severity.ShouldAlert() {
		label = fmt.Sprintf("Error (%s):", severity)
	}
	fmt.Fprintln(w, ErrorStyle.Render(label)+" "+huerrors.String(err))
}

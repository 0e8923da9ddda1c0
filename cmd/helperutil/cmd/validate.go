// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: validate command: JSON, YAML and TOML syntax checks
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/utils/validationx"
)

func newValidateCmd(a *app) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a JSON, YAML or TOML document is well-formed",
		Long: `Checks the syntax of FILE. The format follows the file extension unless
--format is given. Use "-" to read standard input, which requires --format.`,
		Example: `  helperutil validate helperutil.toml
  cat data | helperutil validate --format json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			format := validationx.FormatFromPath(path)
			if formatName != "" {
				f, err := validationx.ParseFormat(formatName)
				if err != nil {
					return err
				}
				format = f
			}
			if format == validationx.FormatUnknown {
				return fmt.Errorf("cannot tell the format of %q, use --format", path)
			}

			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			if err := validationx.Check(format, string(data)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), verdict(true, "valid "+format.String(), ""))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "json, yaml or toml")

	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

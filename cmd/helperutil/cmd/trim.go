// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: trim command: shorten text with a delimiter
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/utils/stringx"
)

func newTrimCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trim TEXT",
		Short: "Shorten text to a maximum length",
		Long: `Shortens TEXT when it has more than --length characters. The result
keeps length minus the delimiter length characters and ends with the
delimiter.`,
		Example: `  helperutil trim --length 8 "hello wonderful world"   # hello...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length := a.intSetting(cmd, "length", "trim.length", stringx.DefaultTrimLength)
			delimiter := a.stringSetting(cmd, "delimiter", "trim.delimiter", stringx.DefaultTrimDelimiter)

			fmt.Fprintln(cmd.OutOrStdout(), stringx.TrimLength(args[0], length, delimiter))
			return nil
		},
	}

	cmd.Flags().IntP("length", "l", stringx.DefaultTrimLength, "maximum length")
	cmd.Flags().StringP("delimiter", "d", stringx.DefaultTrimDelimiter, "text appended when shortened")

	return cmd
}

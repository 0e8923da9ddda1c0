// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: time12 command: 24-hour to 12-hour clock
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/utils/timex"
)

func newTime12Cmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "time12 HH:MM[:SS]...",
		Short: "Convert 24-hour times to AM/PM",
		Long: `Converts each time to "hh:mm AM" or "hh:mm PM". Seconds are dropped and
input that is not a time is printed unchanged.`,
		Example: `  helperutil time12 14:30 09:05:59   # 02:30 PM, 09:05 AM`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), timex.FormatTime12HR(arg))
			}
			return nil
		},
	}
}

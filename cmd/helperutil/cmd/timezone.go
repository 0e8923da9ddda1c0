// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: timezone command: IANA name validation
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

func newTimezoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timezone NAME...",
		Short: "Check IANA time zone names",
		Long: `Reports whether each NAME is a known IANA time zone such as
Europe/Berlin. Exits with status 1 if any name is unknown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allValid := true
			for _, name := range args {
				ok := timex.IsTimezone(name)
				allValid = allValid && ok
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, verdict(ok, "valid", "invalid"))
			}
			if !allValid {
				return &ExitCodeError{Code: 1}
			}
			return nil
		},
	}
}

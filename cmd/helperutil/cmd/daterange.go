// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: daterange command: list the days between two dates
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/core/log"
	"github.com/msto63/helperutil/utils/timex"
)

func newDateRangeCmd(a *app) *cobra.Command {
	var inclusive bool

	cmd := &cobra.Command{
		Use:   "daterange START END",
		Short: "List the calendar days from START to END",
		Long: `Prints one YYYY-MM-DD line per day from START up to END. END is included
unless --inclusive=false is given, in which case the listing ends on the
first day at or past END. When START is after END only START is printed,
or nothing with --inclusive=false.`,
		Example: `  helperutil daterange 2024-02-27 2024-03-01
  helperutil daterange --inclusive=false 2024-01-01 2024-01-08`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := timex.GenerateDateRangeFromStrings(args[0], args[1], inclusive)
			if err != nil {
				return err
			}

			a.logger.Debug("date range generated", log.Fields{"days": len(days)})
			for _, day := range days {
				fmt.Fprintln(cmd.OutOrStdout(), day)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&inclusive, "inclusive", true, "include END")

	return cmd
}

// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: fullname command: join first and last name
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

func newFullNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fullname FIRST [LAST]",
		Short: "Join a first and last name",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			last := ""
			if len(args) == 2 {
				last = args[1]
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.FullName(args[0], last))
			return nil
		},
	}
}

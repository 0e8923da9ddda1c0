// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: contains command: substring search
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/utils/stringx"
)

func newContainsCmd(a *app) *cobra.Command {
	var caseSensitive bool

	cmd := &cobra.Command{
		Use:   "contains HAYSTACK NEEDLE",
		Short: "Check whether a text contains a substring",
		Long: `Prints true or false. Matching ignores case unless --case-sensitive is
given. Exits with status 1 when the needle is not found.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := stringx.HasSubString(args[0], args[1], caseSensitive)
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(found))
			if !found {
				return &ExitCodeError{Code: 1}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "c", false, "match case exactly")

	return cmd
}

// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: pin command: numeric PIN generation
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

func newPinCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Generate numeric PINs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			digits := a.intSetting(cmd, "digits", "pin.digits", stringx.DefaultPinDigits)
			for range max(count, 1) {
				fmt.Fprintln(cmd.OutOrStdout(), stringx.GeneratePin(digits))
			}
			return nil
		},
	}

	cmd.Flags().IntP("digits", "d", stringx.DefaultPinDigits, "number of digits")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of PINs")

	return cmd
}

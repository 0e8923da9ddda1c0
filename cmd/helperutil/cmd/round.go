// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: round command: decimal rounding
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/utils/mathx"
)

func newRoundCmd(a *app) *cobra.Command {
	var (
		places int
		mode   string
	)

	cmd := &cobra.Command{
		Use:   "round NUMBER...",
		Short: "Round numbers to a number of decimal places",
		Long: `Rounds on the shortest decimal form of each number, so 1.005 rounds to
1.01. Modes: half-away (default), half-even, down, up.`,
		Example: `  helperutil round 1.005                 # 1.01
  helperutil round --places 0 --mode half-even 2.5   # 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, ok := mathx.ParseRoundingMode(mode)
			if !ok {
				return fmt.Errorf("unknown rounding mode %q", mode)
			}

			for _, arg := range args {
				n, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				rounded := mathx.RoundOffMode(n, places, rm)
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(rounded, 'f', -1, 64))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&places, "places", "p", mathx.DefaultDecimalPlaces, "decimal places")
	cmd.Flags().StringVarP(&mode, "mode", "m", mathx.RoundHalfAwayFromZero.String(), "rounding mode")

	return cmd
}

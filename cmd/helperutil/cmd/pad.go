// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: pad command: left-pad integers
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

func newPadCmd(a *app) *cobra.Command {
	var (
		length int
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "pad NUMBER...",
		Short: "Left-pad integers to a fixed width",
		Long: `Left-pads each integer with a repeated prefix until it is exactly
--length characters wide. Numbers that are already wide enough are printed
unchanged.`,
		Example: `  helperutil pad --length 5 42        # 00042
  helperutil pad --length 6 --prefix ab 7  # ababa7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid integer %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), stringx.FormatInt(n, length, prefix))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "target width")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", stringx.DefaultPadPrefix, "padding text")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

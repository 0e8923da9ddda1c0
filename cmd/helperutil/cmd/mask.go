// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: mask command: hide part of a value
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/utils/stringx"
)

func newMaskCmd(a *app) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "mask VALUE",
		Short: "Mask part of a value",
		Long: `Replaces characters of VALUE with a mask character, starting at
--start. Without --length the masked span is the length minus 6, or minus 2
for short values. The output always has as many characters as the input.`,
		Example: `  helperutil mask 1234567890              # 12****7890
  helperutil mask --start 0 --length 4 --char '#' 1234567890`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := a.intSetting(cmd, "start", "mask.start", 2)
			char := a.stringSetting(cmd, "char", "mask.char", "*")

			r, size := utf8.DecodeRuneInString(char)
			if size == 0 || size != len(char) {
				return fmt.Errorf("mask character must be a single character, got %q", char)
			}

			fmt.Fprintln(cmd.OutOrStdout(), stringx.Mask(args[0], stringx.MaskOptions{
				Start:  start,
				Length: length,
				Char:   r,
			}))
			return nil
		},
	}

	cmd.Flags().IntP("start", "s", 2, "first masked position")
	cmd.Flags().IntVarP(&length, "length", "l", stringx.MaskLengthAuto, "number of masked characters (-1: automatic)")
	cmd.Flags().StringP("char", "c", "*", "mask character")

	return cmd
}

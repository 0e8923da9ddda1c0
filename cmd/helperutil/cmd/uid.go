// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: uid command: unique identifier generation
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

func newUIDCmd(a *app) *cobra.Command {
	var (
		caseSensitive bool
		prefix        string
		secure        bool
		count         int
	)

	cmd := &cobra.Command{
		Use:   "uid",
		Short: "Generate unique identifiers",
		Long: `Generates random alphanumeric identifiers of a fixed total length.

The prefix counts towards the length and is never altered. Identifiers are
lower-cased unless --case-sensitive is given. Use --secure for tokens that
guard access; the default source is fast but predictable.`,
		Example: `  helperutil uid
  helperutil uid --length 12 --prefix ord_
  helperutil uid --secure --case-sensitive --count 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			length := a.intSetting(cmd, "length", "uid.length", stringx.DefaultUniqueIDLength)

			generate := stringx.GenerateUniqueID
			if secure {
				generate = stringx.GenerateSecureUniqueID
			}

			for range max(count, 1) {
				id, err := generate(length, caseSensitive, prefix)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().IntP("length", "l", stringx.DefaultUniqueIDLength, "total length including the prefix")
	cmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "c", false, "keep mixed case")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "fixed prefix")
	cmd.Flags().BoolVar(&secure, "secure", false, "use crypto/rand")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers")

	return cmd
}

// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: os command: operating system detection
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/utils/osx"
)

func newOSCmd(a *app) *cobra.Command {
	var identifier string

	cmd := &cobra.Command{
		Use:   "os",
		Short: "Show the detected operating system",
		Long: `Shows the operating system family helperutil detects for this host, or
for an arbitrary identifier with --detect.`,
		Example: `  helperutil os
  helperutil os --detect Darwin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("detect") {
				fmt.Fprintln(out, osx.DetectOS(identifier))
				return nil
			}

			detected := osx.GetOS()
			fmt.Fprintln(out, keyValue("OS", detected.String()))
			fmt.Fprintln(out, keyValue("ID", strconv.Itoa(int(detected))))
			fmt.Fprintln(out, keyValue("GOOS", runtime.GOOS))
			fmt.Fprintln(out, keyValue("GOARCH", runtime.GOARCH))
			return nil
		},
	}

	cmd.Flags().StringVar(&identifier, "detect", "", "classify this identifier instead of the host")

	return cmd
}

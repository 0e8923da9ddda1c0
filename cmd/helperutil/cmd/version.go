// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     cmd
// Description: version command
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/helperutil/pkg/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()

			if short {
				fmt.Fprintln(out, info.Version)
				return
			}

			fmt.Fprintln(out, TitleStyle.Render("helperutil v"+info.Version))
			fmt.Fprintln(out, keyValue("Git Commit", info.GitCommit))
			fmt.Fprintln(out, keyValue("Build Date", info.BuildDate))
			fmt.Fprintln(out, keyValue("Go Version", info.GoVersion))
			fmt.Fprintln(out, keyValue("OS/Arch", info.Platform))
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print the version number only")

	return cmd
}

// ============================================================================
// helperutil - Static helper toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its CLI
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the library version
const Version = "0.1.0"

// Build metadata, set via -ldflags "-X github.com/msto63/helperutil/pkg/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary such as "helperutil v0.1.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("helperutil v%s (%s)", i.Version, i.GitCommit)
}

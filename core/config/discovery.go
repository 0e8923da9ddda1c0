// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches well-known directories for a helperutil
//              configuration file and loads the first one found.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation of file discovery

package config

import (
	"os"
	"path/filepath"
	"strings"

	huerror "github.com/msto63/helperutil/core/error"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Fail when no file is found
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for helperutil.{toml,yaml,yml}
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "helperutil"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"helperutil"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, an empty configuration with environment
// overrides is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	if path, ok := findFile(options); ok {
		return LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
	}

	if options.Required {
		searched := ListPossibleConfigFiles(options)
		return nil, huerror.New("no configuration file found in: "+strings.Join(searched, ", ")).
			WithCode(huerror.CodeNotFound).
			WithOperation("config.discover").
			WithDetail("searchPaths", searched)
	}

	return Empty(options.EnvPrefix), nil
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

func findFile(options DiscoveryOptions) (string, bool) {
	for _, path := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

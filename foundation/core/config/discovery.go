// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first configuration
//              file matching one of several base names and extensions.
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-04-16
//
// Change History:
// - 2026-03-02 v0.1.0: Initial implementation of file discovery
// - 2026-04-16 v0.2.0: SnakeMath search paths, optional discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search options used by the CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./configs"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "snakemath"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"snakemath"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "SNAKEMATH",
		Required:   false,
	}
}

// Discover finds and loads the first matching configuration file. When none
// exists and the file is optional, an empty configuration carrying the
// environment prefix is returned.
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

	configPath, err := FindConfigFile(options)
	if err == nil {
		cfg, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if loadErr != nil {
			return nil, smerror.Wrap(loadErr, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return cfg, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, smerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(smerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return Empty(options.EnvPrefix), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", smerror.New("configuration file not found").
		WithCode(smerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

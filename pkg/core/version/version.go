// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     version
// Description: Central version management for the engine and its hosts
// Created:     2026-03-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the engine components
const (
	// Engine version
	Engine = "0.4.0"

	// Host versions
	CLI      = "0.4.0"
	Explorer = "0.2.0"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli":
		return CLI
	case "explorer":
		return Explorer
	default:
		return Engine
	}
}

// Info describes the running build
type Info struct {
	Component string `json:"component" yaml:"component"`
	Version   string `json:"version" yaml:"version"`
	Engine    string `json:"engine" yaml:"engine"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// Get returns build information for component
func Get(component string) Info {
	return Info{
		Component: component,
		Version:   ComponentVersion(component),
		Engine:    Engine,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (engine %s, commit %s, built %s, %s)",
		i.Component, i.Version, i.Engine, i.Commit, i.BuildDate, i.GoVersion)
}

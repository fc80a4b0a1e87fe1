// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package documentation for the TOML/YAML configuration loader.
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-04-16

/*
Package config loads SnakeMath configuration files.

Files are TOML or YAML, detected from the extension. Values are read through
dot-path getters that take an optional default:

	cfg, err := config.Load("snakemath.toml")
	if err != nil {
		return err
	}
	absTol := cfg.GetFloat("limit.abs_tol", 1e-6)
	method := cfg.GetString("derivative.method", "central")

With an environment prefix every key can be overridden from the environment.
The key is upper-cased and dots become underscores:

	cfg, _ := config.LoadWithOptions(path, config.LoadOptions{EnvPrefix: "SNAKEMATH"})
	// SNAKEMATH_LIMIT_ABS_TOL=1e-8 overrides limit.abs_tol

Discover searches the working directory, ./configs and ~/.config/snakemath for
snakemath.toml, snakemath.yaml or snakemath.yml. A missing file is not an error
unless DiscoveryOptions.Required is set; the returned configuration is then
empty and only environment overrides and defaults apply.

Failures are *error.Error values with codes NOT_FOUND, MISSING_CONFIG,
CONFIG_ERROR or INVALID_CONFIG.
*/
package config

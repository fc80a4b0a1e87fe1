// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and engine setup for the CLI
// Created:     2026-03-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	smlog "github.com/Cal-ly/SnakeMath-sub002/foundation/core/log"
	"github.com/Cal-ly/SnakeMath-sub002/internal/tui"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/core/config"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/core/logging"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	seed      uint64
	output    string
	metrics   bool

	settings *config.Settings
	logger   *smlog.Logger
	eng      *engine.Engine
)

var rootCmd = &cobra.Command{
	Use:   "snakemath",
	Short: "SnakeMath - numerical calculus and statistics engine",
	Long: `SnakeMath evaluates limits, derivatives and Riemann sums of catalog
functions, works with probability distributions and runs the usual
inference and regression procedures.

Calculus:
  catalog, limit, continuity, derivative, tangent, secants,
  critical, integrate, convergence

Statistics:
  dist, clt, bootstrap, ttest, ztest, power, regress, anscombe

Other:
  explore, config, version`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the command tree
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: discover snakemath.toml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	pf.StringVar(&logFormat, "log-format", "", "log format: console, text or json")
	pf.Uint64Var(&seed, "seed", 0, "random seed, 0 included, overriding the configured one (default: from config)")
	pf.StringVarP(&output, "output", "o", "", "output format: text, json or yaml")
	pf.BoolVar(&metrics, "metrics", false, "print engine metrics after the command")
}

func setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		s.General.Seed = seed
	}
	if output != "" {
		s.General.Output = output
	}
	if logFormat != "" {
		s.Log.Format = logFormat
	}
	if err := s.Validate(); err != nil {
		return err
	}
	settings = s

	logger = logging.NewLogger(logging.LoggerConfig{
		Name:   "cli",
		Level:  logging.VerboseLevel(verbose, s.Log.Level),
		Format: s.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	logger.Debug("settings loaded", smlog.String("config", cfgFile), smlog.Field("seed", s.General.Seed))

	eng, err = engine.New(s, nil, logger)
	return err
}

func teardown(cmd *cobra.Command, args []string) error {
	if eng == nil {
		return nil
	}
	defer func() {
		eng.Close()
		eng = nil
	}()
	if metrics {
		fmt.Fprintln(cmd.OutOrStdout())
		return eng.Metrics().WriteText(cmd.OutOrStdout())
	}
	return nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, tui.RenderError(err))
}

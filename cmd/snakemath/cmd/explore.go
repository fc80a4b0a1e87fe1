package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Cal-ly/SnakeMath-sub002/internal/tui/explorer"
)

var exploreFunction string

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Starts the interactive explorer",
	Long: `Starts the terminal explorer. Pick a catalog function, then move x and
watch the limit, continuity, derivative, tangent and Riemann sum update.

Navigation:
  ←/→ ↑/↓   Move x by 0.1 / 1
  m         Cycle forward, backward and central quotients
  +/-       Grow or shrink h
  n/N       More or fewer partitions
  s         Cycle the Riemann sum rule
  Esc       Back to the function list
  q         Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return explorer.Run(explorer.Config{
			Engine:   eng,
			Logger:   logger,
			Function: exploreFunction,
			X:        atPoint,
		})
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	exploreCmd.Flags().StringVar(&exploreFunction, "function", "", "start with this catalog function")
	exploreCmd.Flags().Float64Var(&atPoint, "at", 0, "starting x")
}

package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the effective settings as TOML",
	Long: `Prints the settings after merging defaults, the config file and
SNAKEMATH_* environment overrides. The output is a valid config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Encode(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

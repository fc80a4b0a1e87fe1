package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Cal-ly/SnakeMath-sub002/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get("cli")
		return render(cmd, info, func(w io.Writer) {
			fmt.Fprintf(w, "snakemath v%s\n", info.Version)
			fmt.Fprintf(w, "  Engine:     %s\n", info.Engine)
			fmt.Fprintf(w, "  Explorer:   %s\n", version.Explorer)
			fmt.Fprintf(w, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(w, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(w, "  Run ID:     %s\n", logger.RunID())
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

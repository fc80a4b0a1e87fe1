package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cal-ly/SnakeMath-sub002/internal/tui"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

var catalogTag string

var catalogCmd = &cobra.Command{
	Use:   "catalog [id]",
	Short: "Lists the function catalog",
	Long: `Lists the preset functions every calculus command accepts by ID.

With an ID, shows that function's notation, Go form and labeled points.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogTag, "tag", "", "only functions with this tag (limits, continuity, derivatives, integrals)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		fn, err := eng.Function(args[0])
		if err != nil {
			return err
		}
		return render(cmd, fn, func(w io.Writer) {
			fmt.Fprintln(w, tui.RenderTitle(fn.Name))
			rows := [][2]string{
				{"id", fn.ID},
				{"notation", fn.Notation},
				{"go", fn.GoCode},
				{"tags", joinTags(fn.Tags)},
				{"exact f'", yesNo(fn.HasDerivative())},
				{"antiderivative", yesNo(fn.HasIntegral())},
			}
			for _, p := range fn.InterestingPoints {
				rows = append(rows, [2]string{"x = " + formatFloat(p.X), p.Label})
			}
			fmt.Fprint(w, tui.KV(rows...))
		})
	}

	fns := eng.Catalog().All()
	if catalogTag != "" {
		fns = eng.Catalog().ByTag(catalog.Tag(catalogTag))
	}
	return render(cmd, fns, func(w io.Writer) {
		rows := make([][]string, len(fns))
		for i, fn := range fns {
			rows[i] = []string{fn.ID, fn.Notation, joinTags(fn.Tags)}
		}
		fmt.Fprint(w, tui.Table([]string{"ID", "NOTATION", "TAGS"}, rows))
	})
}

func joinTags(tags []catalog.Tag) string {
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = string(t)
	}
	return strings.Join(s, ",")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

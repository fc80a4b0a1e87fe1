package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Cal-ly/SnakeMath-sub002/internal/tui"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine"
)

var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Least-squares line with influence diagnostics",
	Long: `Fits y = a + b·x and reports correlation, the standard error of the
estimate and Cook's distance for every point. Points above 4/n are
flagged as influential.

Example:
  snakemath regress --x 1,2,3,4,5 --y 2.1,3.9,6.2,8.1,9.8`,
	RunE: runRegress,
}

var anscombeCmd = &cobra.Command{
	Use:   "anscombe",
	Short: "Fits the four datasets of Anscombe's quartet",
	RunE:  runAnscombe,
}

func init() {
	rootCmd.AddCommand(regressCmd, anscombeCmd)
	regressCmd.Flags().StringVar(&dataX, "x", "", "predictor values")
	regressCmd.Flags().StringVar(&dataY, "y", "", "response values")
}

func runRegress(cmd *cobra.Command, args []string) error {
	x, err := parseFloats("x", dataX)
	if err != nil {
		return err
	}
	y, err := parseFloats("y", dataY)
	if err != nil {
		return err
	}
	fit, err := eng.Regress(x, y)
	if err != nil {
		return err
	}
	return render(cmd, fit, func(w io.Writer) {
		writeFit(w, "least squares", fit)
		if len(fit.Cooks) == 0 {
			return
		}
		influential := make(map[int]bool, len(fit.Influential))
		for _, inf := range fit.Influential {
			influential[inf.Index] = true
		}
		rows := make([][]string, len(x))
		for i := range x {
			flag := ""
			if influential[i] {
				flag = tui.WarnStyle.Render("influential")
			}
			rows[i] = []string{fmt.Sprint(i), formatFloat(x[i]), formatFloat(y[i]),
				formatFloat(fit.Model.Residuals[i]), formatFloat(fit.Cooks[i]), flag}
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, tui.Table([]string{"I", "X", "Y", "RESIDUAL", "COOK", ""}, rows))
	})
}

func writeFit(w io.Writer, title string, fit engine.Fit) {
	m := fit.Model
	fmt.Fprintln(w, tui.RenderTitle(title))
	rows := [][2]string{
		{"line", fmt.Sprintf("y = %s + %s·x", formatFloat(m.Intercept), formatFloat(m.Slope))},
		{"r", formatFloat(m.R)},
		{"r²", formatFloat(m.RSquared)},
		{"std. error", formatFloat(m.StandardError)},
		{"n", fmt.Sprint(m.N)},
	}
	if fit.Threshold > 0 {
		rows = append(rows, [2]string{"cook threshold", formatFloat(fit.Threshold)})
	}
	fmt.Fprint(w, tui.KV(rows...))
}

// AnscombeReport pairs each dataset with its fit
type AnscombeReport struct {
	Name string     `json:"name" yaml:"name"`
	X    []float64  `json:"x" yaml:"x"`
	Y    []float64  `json:"y" yaml:"y"`
	Fit  engine.Fit `json:"fit" yaml:"fit"`
}

func runAnscombe(cmd *cobra.Command, args []string) error {
	sets, fits, err := eng.Anscombe()
	if err != nil {
		return err
	}
	reports := make([]AnscombeReport, len(sets))
	for i, ds := range sets {
		reports[i] = AnscombeReport{Name: ds.Name, X: ds.X, Y: ds.Y, Fit: fits[i]}
	}
	return render(cmd, reports, func(w io.Writer) {
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeFit(w, "dataset "+r.Name, r.Fit)
			if len(r.Fit.Influential) > 0 {
				idx := make([]string, len(r.Fit.Influential))
				for j, inf := range r.Fit.Influential {
					idx[j] = fmt.Sprintf("#%d (D=%s)", inf.Index, formatFloat(inf.Cook))
				}
				fmt.Fprint(w, tui.KV([2]string{"influential", fmt.Sprint(idx)}))
			}
		}
	})
}

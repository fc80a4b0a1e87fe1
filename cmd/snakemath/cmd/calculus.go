package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Cal-ly/SnakeMath-sub002/internal/tui"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/derivative"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/integral"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/limit"
)

var (
	atPoint     float64
	limitSide   string
	diffMethod  string
	diffStep    float64
	rangeFrom   float64
	rangeTo     float64
	scanSamples int
	partitions  int
	sumMethod   string
	showRects   bool
	partitionNs string
)

var limitCmd = &cobra.Command{
	Use:   "limit <function>",
	Short: "Estimates a limit numerically",
	Long: `Approaches the point along shrinking offsets and classifies the
behavior on each side: converges, diverges to ±∞, oscillates or stays
undetermined.

Example:
  snakemath limit removable --at 1
  snakemath limit reciprocal --at 0 --side right`,
	Args: cobra.ExactArgs(1),
	RunE: runLimit,
}

var continuityCmd = &cobra.Command{
	Use:   "continuity <function>",
	Short: "Classifies continuity at a point",
	Args:  cobra.ExactArgs(1),
	RunE:  runContinuity,
}

var derivativeCmd = &cobra.Command{
	Use:   "derivative <function>",
	Short: "Estimates f'(x) with a difference quotient",
	Args:  cobra.ExactArgs(1),
	RunE:  runDerivative,
}

var tangentCmd = &cobra.Command{
	Use:   "tangent <function>",
	Short: "Tangent line at a point",
	Args:  cobra.ExactArgs(1),
	RunE:  runTangent,
}

var secantsCmd = &cobra.Command{
	Use:   "secants <function>",
	Short: "Secant lines approaching the tangent",
	Args:  cobra.ExactArgs(1),
	RunE:  runSecants,
}

var criticalCmd = &cobra.Command{
	Use:   "critical <function>",
	Short: "Critical and inflection points on an interval",
	Args:  cobra.ExactArgs(1),
	RunE:  runCritical,
}

var integrateCmd = &cobra.Command{
	Use:   "integrate <function>",
	Short: "Riemann sum over an interval",
	Long: `Approximates the definite integral with left, right, midpoint,
trapezoidal or Simpson sums. Simpson needs an even partition count.

Example:
  snakemath integrate square --from 0 --to 1 --n 10 --method simpson`,
	Args: cobra.ExactArgs(1),
	RunE: runIntegrate,
}

var convergenceCmd = &cobra.Command{
	Use:   "convergence <function>",
	Short: "Riemann sum error as the partition count grows",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvergence,
}

func init() {
	rootCmd.AddCommand(limitCmd, continuityCmd, derivativeCmd, tangentCmd, secantsCmd,
		criticalCmd, integrateCmd, convergenceCmd)

	for _, c := range []*cobra.Command{limitCmd, continuityCmd, derivativeCmd, tangentCmd, secantsCmd} {
		c.Flags().Float64Var(&atPoint, "at", 0, "point to analyze")
	}
	limitCmd.Flags().StringVar(&limitSide, "side", "both", "both, left or right")

	for _, c := range []*cobra.Command{derivativeCmd, tangentCmd} {
		c.Flags().StringVar(&diffMethod, "method", "", "forward, backward or central (default: from config)")
		c.Flags().Float64Var(&diffStep, "h", 0, "step size (default: from config)")
	}

	for _, c := range []*cobra.Command{criticalCmd, integrateCmd, convergenceCmd} {
		c.Flags().Float64Var(&rangeFrom, "from", 0, "interval start")
		c.Flags().Float64Var(&rangeTo, "to", 1, "interval end")
	}
	criticalCmd.Flags().IntVar(&scanSamples, "samples", 0, "scan resolution (default: engine default)")

	for _, c := range []*cobra.Command{integrateCmd, convergenceCmd} {
		c.Flags().StringVar(&sumMethod, "method", "", "left, right, midpoint, trapezoidal or simpson (default: from config)")
	}
	integrateCmd.Flags().IntVar(&partitions, "n", 0, "partition count (default: from config)")
	integrateCmd.Flags().BoolVar(&showRects, "rects", false, "list every subinterval")
	convergenceCmd.Flags().StringVar(&partitionNs, "ns", "", "partition counts, e.g. 2,4,8,16")
}

func runLimit(cmd *cobra.Command, args []string) error {
	dir, err := limit.ParseDirection(limitSide)
	if err != nil {
		return err
	}
	res, err := eng.Limit(args[0], atPoint, dir)
	if err != nil {
		return err
	}
	return render(cmd, res, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("lim x→%s %s", formatFloat(atPoint), args[0])))
		rows := [][2]string{
			{"limit", res.String()},
			{"exists", tui.RenderFlag(res.Exists, yesNo(res.Exists))},
			{"behavior", string(res.Behavior)},
		}
		for _, side := range []*limit.Side{res.Left, res.Right} {
			if side != nil {
				rows = append(rows, [2]string{string(side.Direction), fmt.Sprintf("%s (%s)", formatFloat(side.Value), side.Behavior)})
			}
		}
		fmt.Fprint(w, tui.KV(rows...))
		for _, side := range []*limit.Side{res.Left, res.Right} {
			if side == nil {
				continue
			}
			table := make([][]string, len(side.Samples))
			for i, s := range side.Samples {
				y := formatFloat(s.Y)
				if !s.Defined {
					y = "undefined"
				}
				table[i] = []string{formatFloat(s.Offset), formatFloat(s.X), y}
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, tui.SubtitleStyle.Render(string(side.Direction)+" side"))
			fmt.Fprint(w, tui.Table([]string{"OFFSET", "X", "F(X)"}, table))
		}
	})
}

func runContinuity(cmd *cobra.Command, args []string) error {
	c, err := eng.Continuity(args[0], atPoint)
	if err != nil {
		return err
	}
	return render(cmd, c, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("%s at x = %s", args[0], formatFloat(atPoint))))
		value := "undefined"
		if c.Defined {
			value = formatFloat(c.Value)
		}
		rows := [][2]string{
			{"classification", tui.RenderFlag(c.Classification == limit.Continuous, c.Classification.Describe())},
			{"f(x)", value},
		}
		if c.Left != nil {
			rows = append(rows, [2]string{"left limit", fmt.Sprintf("%s (%s)", formatFloat(c.Left.Value), c.Left.Behavior)})
		}
		if c.Right != nil {
			rows = append(rows, [2]string{"right limit", fmt.Sprintf("%s (%s)", formatFloat(c.Right.Value), c.Right.Behavior)})
		}
		fmt.Fprint(w, tui.KV(rows...))
	})
}

func runDerivative(cmd *cobra.Command, args []string) error {
	res, err := eng.Derivative(args[0], atPoint, derivative.Method(diffMethod), diffStep)
	if err != nil {
		return err
	}
	fn, err := eng.Function(args[0])
	if err != nil {
		return err
	}
	return render(cmd, res, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("d/dx %s at x = %s", fn.Notation, formatFloat(atPoint))))
		rows := [][2]string{
			{"f'(x)", formatFloat(res.Slope)},
			{"method", string(res.Method)},
			{"h", formatFloat(res.Step)},
		}
		if exact, ok := fn.ExactDerivative(atPoint); ok {
			rows = append(rows,
				[2]string{"exact", formatFloat(exact)},
				[2]string{"error", formatFloat(res.Slope - exact)})
		}
		fmt.Fprint(w, tui.KV(rows...))
	})
}

func runTangent(cmd *cobra.Command, args []string) error {
	line, err := eng.Tangent(args[0], atPoint, derivative.Method(diffMethod), diffStep)
	if err != nil {
		return err
	}
	return render(cmd, line, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("tangent to %s at x = %s", args[0], formatFloat(atPoint))))
		fmt.Fprint(w, tui.KV(
			[2]string{"line", fmt.Sprintf("y = %s·x + %s", formatFloat(line.Slope), formatFloat(line.Intercept))},
			[2]string{"through", fmt.Sprintf("(%s, %s)", formatFloat(line.X0), formatFloat(line.Y0))},
		))
	})
}

func runSecants(cmd *cobra.Command, args []string) error {
	secants, err := eng.Secants(args[0], atPoint)
	if err != nil {
		return err
	}
	return render(cmd, secants, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("secants of %s through x = %s", args[0], formatFloat(atPoint))))
		rows := make([][]string, len(secants))
		for i, s := range secants {
			rows[i] = []string{formatFloat(s.H), formatFloat(s.Line.Slope), formatFloat(s.Error)}
		}
		fmt.Fprint(w, tui.Table([]string{"H", "SLOPE", "ERROR"}, rows))
	})
}

func runCritical(cmd *cobra.Command, args []string) error {
	critical, err := eng.CriticalPoints(args[0], rangeFrom, rangeTo, scanSamples)
	if err != nil {
		return err
	}
	inflection, err := eng.InflectionPoints(args[0], rangeFrom, rangeTo, scanSamples)
	if err != nil {
		return err
	}
	points := map[string][]derivative.CriticalPoint{"critical": critical, "inflection": inflection}
	return render(cmd, points, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("%s on [%s, %s]", args[0], formatFloat(rangeFrom), formatFloat(rangeTo))))
		for _, name := range []string{"critical", "inflection"} {
			rows := make([][]string, len(points[name]))
			for i, p := range points[name] {
				rows[i] = []string{formatFloat(p.X), formatFloat(p.Y), string(p.Kind)}
			}
			fmt.Fprintln(w, tui.SubtitleStyle.Render(name+" points"))
			if len(rows) == 0 {
				fmt.Fprintln(w, "  none")
				continue
			}
			fmt.Fprint(w, tui.Table([]string{"X", "F(X)", "KIND"}, rows))
		}
	})
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	sum, err := eng.Riemann(args[0], rangeFrom, rangeTo, partitions, integral.Method(sumMethod))
	if err != nil {
		return err
	}
	if !showRects && settings.General.Output == "text" {
		sum.Rectangles = nil
	}
	return render(cmd, sum, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("∫ %s dx on [%s, %s]", args[0], formatFloat(sum.A), formatFloat(sum.B))))
		rows := [][2]string{
			{"value", formatFloat(sum.Value)},
			{"method", string(sum.Method)},
			{"n", fmt.Sprint(sum.N)},
			{"Δx", formatFloat(sum.DeltaX)},
		}
		if sum.HasExact {
			rows = append(rows, [2]string{"exact", formatFloat(sum.Exact)}, [2]string{"error", formatFloat(sum.Error)})
		}
		fmt.Fprint(w, tui.KV(rows...))
		if len(sum.Rectangles) > 0 {
			table := make([][]string, len(sum.Rectangles))
			for i, r := range sum.Rectangles {
				table[i] = []string{formatFloat(r.X0), formatFloat(r.X1), formatFloat(r.Height)}
			}
			fmt.Fprint(w, tui.Table([]string{"X0", "X1", "HEIGHT"}, table))
		}
	})
}

func runConvergence(cmd *cobra.Command, args []string) error {
	ns, err := parseInts("ns", partitionNs)
	if err != nil {
		return err
	}
	conv, err := eng.Convergence(args[0], rangeFrom, rangeTo, integral.Method(sumMethod), ns)
	if err != nil {
		return err
	}
	return render(cmd, conv, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("%s convergence of %s", conv.Method, args[0])))
		fmt.Fprint(w, tui.KV([2]string{"reference", fmt.Sprintf("%s (%s)", formatFloat(conv.Reference), conv.ReferenceKind)}))
		rows := make([][]string, len(conv.Points))
		for i, p := range conv.Points {
			rows[i] = []string{fmt.Sprint(p.N), formatFloat(p.Value), formatFloat(p.Error)}
		}
		fmt.Fprint(w, tui.Table([]string{"N", "VALUE", "ERROR"}, rows))
	})
}

package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/internal/tui"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/distribution"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/inference"
)

var (
	distParams   string
	distPDF      string
	distCDF      string
	distQuantile string
	distSample   int

	cltSize int
	cltReps int
	cltBins int

	dataX      string
	dataY      string
	resamples  int
	confLevel  float64
	mu0        float64
	alpha      float64
	alt        string
	pooled     bool
	successes  int
	trials     int
	p0         float64
	successes2 int
	trials2    int
	effect     float64
	powerN     int
	target     float64
)

var distCmd = &cobra.Command{
	Use:   "dist <family>",
	Short: "Density, CDF, quantiles and samples of a distribution",
	Long: `Works with the normal, binomial, poisson, exponential, uniform and
student-t families. Parameters not given keep their defaults.

Example:
  snakemath dist normal --params mu=100,sigma=15 --cdf 130 --quantile 0.975
  snakemath dist binomial --params n=10,p=0.3 --pdf 0,1,2,3`,
	Args: cobra.ExactArgs(1),
	RunE: runDist,
}

var cltCmd = &cobra.Command{
	Use:   "clt <family>",
	Short: "Central limit theorem demonstration",
	Args:  cobra.ExactArgs(1),
	RunE:  runCLT,
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Bootstrap and t intervals for a sample mean",
	RunE:  runBootstrap,
}

var ttestCmd = &cobra.Command{
	Use:   "ttest",
	Short: "One- or two-sample t test",
	Long: `Tests --x against --mu0, or --x against --y when --y is given
(Welch by default, pooled with --pooled).`,
	RunE: runTTest,
}

var ztestCmd = &cobra.Command{
	Use:   "ztest",
	Short: "One- or two-proportion z test",
	RunE:  runZTest,
}

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "Power of a one-sample test and the sample size it needs",
	RunE:  runPower,
}

func init() {
	rootCmd.AddCommand(distCmd, cltCmd, bootstrapCmd, ttestCmd, ztestCmd, powerCmd)

	for _, c := range []*cobra.Command{distCmd, cltCmd} {
		c.Flags().StringVar(&distParams, "params", "", "parameters as name=value pairs, e.g. mu=0,sigma=1")
	}
	distCmd.Flags().StringVar(&distPDF, "pdf", "", "evaluate the density (PMF for discrete families) at these points")
	distCmd.Flags().StringVar(&distCDF, "cdf", "", "evaluate the CDF at these points")
	distCmd.Flags().StringVar(&distQuantile, "quantile", "", "evaluate the quantile function at these probabilities")
	distCmd.Flags().IntVar(&distSample, "sample", 0, "draw this many values")

	cltCmd.Flags().IntVar(&cltSize, "size", 0, "sample size (default: from config)")
	cltCmd.Flags().IntVar(&cltReps, "reps", 0, "repetitions (default: from config)")
	cltCmd.Flags().IntVar(&cltBins, "bins", 0, "histogram bins (default: from config)")

	bootstrapCmd.Flags().StringVar(&dataX, "data", "", "sample values")
	bootstrapCmd.Flags().IntVar(&resamples, "resamples", 0, "bootstrap resamples (default: from config)")
	bootstrapCmd.Flags().Float64Var(&confLevel, "level", 0, "confidence level (default: from config)")

	ttestCmd.Flags().StringVar(&dataX, "x", "", "first sample")
	ttestCmd.Flags().StringVar(&dataY, "y", "", "second sample")
	ttestCmd.Flags().Float64Var(&mu0, "mu0", 0, "hypothesized mean for the one-sample test")
	ttestCmd.Flags().BoolVar(&pooled, "pooled", false, "assume equal variances")

	ztestCmd.Flags().IntVar(&successes, "successes", 0, "successes in the first sample")
	ztestCmd.Flags().IntVar(&trials, "n", 0, "size of the first sample")
	ztestCmd.Flags().Float64Var(&p0, "p0", 0.5, "hypothesized proportion for the one-sample test")
	ztestCmd.Flags().IntVar(&successes2, "successes2", 0, "successes in the second sample")
	ztestCmd.Flags().IntVar(&trials2, "n2", 0, "size of the second sample; enables the two-proportion test")

	powerCmd.Flags().Float64Var(&effect, "effect", 0.5, "standardized effect size (Cohen's d)")
	powerCmd.Flags().IntVar(&powerN, "n", 30, "sample size")
	powerCmd.Flags().Float64Var(&target, "target", 0.8, "target power for the sample size calculation (0 skips it)")

	for _, c := range []*cobra.Command{ttestCmd, ztestCmd, powerCmd} {
		c.Flags().Float64Var(&alpha, "alpha", 0, "significance level (default: from config)")
		c.Flags().StringVar(&alt, "alt", "two-sided", "alternative: two-sided, less or greater")
	}
}

// parseParams reads name=value pairs
func parseParams(s string) (map[string]float64, error) {
	params := make(map[string]float64)
	for _, pair := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, smerror.InvalidInput("cli.parseParams", "parameter must be name=value").
				WithDetail("value", pair)
		}
		x, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, smerror.InvalidInput("cli.parseParams", "parameter value is not a number").
				WithDetail("name", name).
				WithDetail("value", value)
		}
		params[strings.TrimSpace(name)] = x
	}
	return params, nil
}

// Point is one evaluated x or p
type Point struct {
	At    float64 `json:"at" yaml:"at"`
	Value float64 `json:"value" yaml:"value"`
}

// DistReport is the output of the dist command
type DistReport struct {
	Family   distribution.Family  `json:"family" yaml:"family"`
	Params   map[string]float64   `json:"params" yaml:"params"`
	Support  distribution.Support `json:"support" yaml:"support"`
	Mean     float64              `json:"mean" yaml:"mean"`
	Variance float64              `json:"variance" yaml:"variance"`
	PDF      []Point              `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	CDF      []Point              `json:"cdf,omitempty" yaml:"cdf,omitempty"`
	Quantile []Point              `json:"quantile,omitempty" yaml:"quantile,omitempty"`
	Sample   []float64            `json:"sample,omitempty" yaml:"sample,omitempty"`
}

func runDist(cmd *cobra.Command, args []string) error {
	family, err := distribution.ParseFamily(args[0])
	if err != nil {
		return err
	}
	params, err := parseParams(distParams)
	if err != nil {
		return err
	}
	d, err := eng.Distribution(family, params)
	if err != nil {
		return err
	}
	report := DistReport{
		Family:   d.Family(),
		Params:   d.Params(),
		Support:  d.Support(),
		Mean:     d.Mean(),
		Variance: d.Variance(),
	}

	xs, err := parseFloats("pdf", distPDF)
	if err != nil {
		return err
	}
	for _, x := range xs {
		report.PDF = append(report.PDF, Point{At: x, Value: d.Density(x)})
	}
	if xs, err = parseFloats("cdf", distCDF); err != nil {
		return err
	}
	for _, x := range xs {
		report.CDF = append(report.CDF, Point{At: x, Value: d.CDF(x)})
	}
	ps, err := parseFloats("quantile", distQuantile)
	if err != nil {
		return err
	}
	for _, p := range ps {
		q, err := d.Quantile(p)
		if err != nil {
			return err
		}
		report.Quantile = append(report.Quantile, Point{At: p, Value: q})
	}
	if distSample > 0 {
		if report.Sample, err = eng.DistributionSample(family, params, distSample, settings.General.Seed); err != nil {
			return err
		}
	}

	return render(cmd, report, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("%s %s", report.Family, formatParams(report.Params))))
		fmt.Fprint(w, tui.KV(
			[2]string{"support", report.Support.String()},
			[2]string{"mean", formatFloat(report.Mean)},
			[2]string{"variance", formatFloat(report.Variance)},
		))
		for _, section := range []struct {
			name   string
			header string
			points []Point
		}{
			{"density", "X", report.PDF},
			{"cdf", "X", report.CDF},
			{"quantile", "P", report.Quantile},
		} {
			if len(section.points) == 0 {
				continue
			}
			rows := make([][]string, len(section.points))
			for i, p := range section.points {
				rows[i] = []string{formatFloat(p.At), formatFloat(p.Value)}
			}
			fmt.Fprint(w, tui.Table([]string{section.header, strings.ToUpper(section.name)}, rows))
		}
		if len(report.Sample) > 0 {
			fmt.Fprintln(w, tui.SubtitleStyle.Render("sample"))
			fmt.Fprintln(w, "  "+formatFloats(report.Sample))
		}
	})
}

func formatParams(params map[string]float64) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + formatFloat(params[name])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func runCLT(cmd *cobra.Command, args []string) error {
	family, err := distribution.ParseFamily(args[0])
	if err != nil {
		return err
	}
	params, err := parseParams(distParams)
	if err != nil {
		return err
	}
	res, err := eng.CLT(family, params, engine.CLTOptions{
		SampleSize:  cltSize,
		Repetitions: cltReps,
		Bins:        cltBins,
		Seed:        settings.General.Seed,
	})
	if err != nil {
		return err
	}
	return render(cmd, res, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("means of %d %s samples of size %d", res.Repetitions, res.Family, res.SampleSize)))
		fmt.Fprint(w, tui.KV(
			[2]string{"mean of means", formatFloat(res.MeanOfMeans)},
			[2]string{"theoretical mean", formatFloat(res.TheoreticalMean)},
			[2]string{"sd of means", formatFloat(res.SDOfMeans)},
			[2]string{"theoretical se", formatFloat(res.TheoreticalSE)},
		))
		fmt.Fprint(w, histogram(res.Histogram))
	})
}

// histogram draws horizontal bars scaled to the largest count
func histogram(h distribution.Histogram) string {
	const width = 40
	peak := 0
	for _, c := range h.Counts {
		peak = max(peak, c)
	}
	var b strings.Builder
	for i, c := range h.Counts {
		bar := 0
		if peak > 0 {
			bar = c * width / peak
		}
		fmt.Fprintf(&b, "  %10s │%s %d\n", formatFloat(h.Edges[i]),
			tui.GoodStyle.Render(strings.Repeat("█", bar)), c)
	}
	return b.String()
}

// BootstrapReport compares the bootstrap percentile interval with the t interval
type BootstrapReport struct {
	Summary   inference.Summary         `json:"summary" yaml:"summary"`
	Bootstrap inference.BootstrapResult `json:"bootstrap" yaml:"bootstrap"`
	TInterval *inference.Interval       `json:"t_interval,omitempty" yaml:"t_interval,omitempty"`
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	sample, err := parseFloats("data", dataX)
	if err != nil {
		return err
	}
	summary, err := eng.Summarize(sample)
	if err != nil {
		return err
	}
	boot, err := eng.Bootstrap(sample, resamples, confLevel, settings.General.Seed)
	if err != nil {
		return err
	}
	report := BootstrapReport{Summary: summary, Bootstrap: boot}
	if len(sample) >= 2 {
		ci, err := eng.MeanInterval(sample, confLevel)
		if err != nil && !smerror.IsUndefined(err) {
			return err
		}
		if err == nil {
			report.TInterval = &ci
		}
	}
	return render(cmd, report, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("mean of %d values", summary.N)))
		rows := [][2]string{
			{"mean", formatFloat(summary.Mean)},
			{"sd", formatFloat(summary.SD)},
			{"five numbers", formatFloats([]float64{summary.Min, summary.Q1, summary.Median, summary.Q3, summary.Max})},
			{fmt.Sprintf("bootstrap %g%%", boot.Level*100), fmt.Sprintf("[%s, %s]", formatFloat(boot.Lower), formatFloat(boot.Upper))},
			{"resamples", fmt.Sprint(boot.Resamples)},
		}
		if report.TInterval != nil {
			ci := report.TInterval
			rows = append(rows, [2]string{fmt.Sprintf("%s %g%%", ci.Kind, ci.Level*100), fmt.Sprintf("[%s, %s]", formatFloat(ci.Lower), formatFloat(ci.Upper))})
		}
		if len(summary.Outliers) > 0 {
			rows = append(rows, [2]string{"outliers", formatFloats(summary.Outliers)})
		}
		fmt.Fprint(w, tui.KV(rows...))
	})
}

func renderTest(cmd *cobra.Command, test inference.HypothesisTest) error {
	return render(cmd, test, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(test.Name))
		rows := [][2]string{
			{"H0", test.Null},
			{"H1", test.AltText},
			{"statistic", formatFloat(test.Statistic)},
			{"p-value", formatFloat(test.PValue)},
		}
		if test.DF > 0 {
			rows = append(rows, [2]string{"df", formatFloat(test.DF)})
		}
		rows = append(rows,
			[2]string{"alpha", formatFloat(test.Alpha)},
			[2]string{"decision", tui.RenderFlag(!test.Reject, test.Decision)})
		fmt.Fprint(w, tui.KV(rows...))
	})
}

func runTTest(cmd *cobra.Command, args []string) error {
	a, err := inference.ParseAlternative(alt)
	if err != nil {
		return err
	}
	x, err := parseFloats("x", dataX)
	if err != nil {
		return err
	}
	y, err := parseFloats("y", dataY)
	if err != nil {
		return err
	}
	var test inference.HypothesisTest
	if len(y) == 0 {
		test, err = eng.OneSampleT(x, mu0, alpha, a)
	} else {
		test, err = eng.TwoSampleT(x, y, alpha, a, pooled)
	}
	if err != nil {
		return err
	}
	return renderTest(cmd, test)
}

func runZTest(cmd *cobra.Command, args []string) error {
	a, err := inference.ParseAlternative(alt)
	if err != nil {
		return err
	}
	var test inference.HypothesisTest
	if trials2 > 0 {
		test, err = eng.TwoProportionZ(successes, trials, successes2, trials2, alpha, a)
	} else {
		test, err = eng.OneProportionZ(successes, trials, p0, alpha, a)
	}
	if err != nil {
		return err
	}
	return renderTest(cmd, test)
}

func runPower(cmd *cobra.Command, args []string) error {
	a, err := inference.ParseAlternative(alt)
	if err != nil {
		return err
	}
	report, err := eng.Power(effect, powerN, alpha, a, target)
	if err != nil {
		return err
	}
	return render(cmd, report, func(w io.Writer) {
		fmt.Fprintln(w, tui.RenderTitle(fmt.Sprintf("power of a %s test", report.Alternative)))
		rows := [][2]string{
			{"effect", fmt.Sprintf("%s (%s)", formatFloat(report.Effect), report.Magnitude)},
			{"n", fmt.Sprint(report.N)},
			{"alpha", formatFloat(report.Alpha)},
			{"power", tui.RenderFlag(report.Target == 0 || report.Power >= report.Target, formatFloat(report.Power))},
		}
		if report.RequiredN > 0 {
			rows = append(rows, [2]string{fmt.Sprintf("n for power %g", report.Target), fmt.Sprint(report.RequiredN)})
		}
		fmt.Fprint(w, tui.KV(rows...))
	})
}

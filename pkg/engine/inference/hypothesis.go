package inference

import (
	"fmt"
	"math"
	"strings"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/core/validation"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/distribution"
)

// Alternative is the direction of the alternative hypothesis
type Alternative int

const (
	TwoSided Alternative = iota
	Less
	Greater
)

func (a Alternative) String() string {
	switch a {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "two-sided"
	}
}

func (a Alternative) symbol() string {
	switch a {
	case Less:
		return "<"
	case Greater:
		return ">"
	default:
		return "≠"
	}
}

// ParseAlternative accepts two-sided, less and greater. Empty means two-sided.
func ParseAlternative(s string) (Alternative, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "two-sided", "two_sided", "twosided", "ne":
		return TwoSided, nil
	case "less", "lt":
		return Less, nil
	case "greater", "gt":
		return Greater, nil
	}
	return TwoSided, smerror.InvalidInput("inference.ParseAlternative", "unknown alternative").
		WithDetail("alternative", s)
}

// Decision texts
const (
	DecisionReject     = "reject H0"
	DecisionFailReject = "fail to reject H0"
)

// HypothesisTest is the outcome of a significance test
type HypothesisTest struct {
	Name        string      `json:"name" yaml:"name"`
	Null        string      `json:"null" yaml:"null"`
	AltText     string      `json:"alternative_text" yaml:"alternative_text"`
	Alternative Alternative `json:"-" yaml:"-"`
	Statistic   float64     `json:"statistic" yaml:"statistic"`
	PValue      float64     `json:"p_value" yaml:"p_value"`
	DF          float64     `json:"df,omitempty" yaml:"df,omitempty"`
	Alpha       float64     `json:"alpha" yaml:"alpha"`
	Reject      bool        `json:"reject" yaml:"reject"`
	Decision    string      `json:"decision" yaml:"decision"`
}

func (h HypothesisTest) String() string {
	return fmt.Sprintf("%s: statistic=%.4f p=%.4g (α=%.3g) → %s", h.Name, h.Statistic, h.PValue, h.Alpha, h.Decision)
}

// pValue turns a statistic into a p-value under a symmetric null
// distribution with the given CDF.
func pValue(cdf func(float64) float64, stat float64, alt Alternative) float64 {
	var p float64
	switch alt {
	case Less:
		p = cdf(stat)
	case Greater:
		p = cdf(-stat)
	default:
		p = 2 * cdf(-math.Abs(stat))
	}
	return mathx.Clamp(p, 0, 1)
}

func decide(h HypothesisTest, cdf func(float64) float64) HypothesisTest {
	h.PValue = pValue(cdf, h.Statistic, h.Alternative)
	h.Reject = h.PValue < h.Alpha
	h.Decision = DecisionFailReject
	if h.Reject {
		h.Decision = DecisionReject
	}
	return h
}

func checkAlpha(op string, alpha float64, alt Alternative) error {
	if alt < TwoSided || alt > Greater {
		return smerror.InvalidInput(op, "unknown alternative").WithDetail("alternative", int(alt))
	}
	return validation.NewParamCheck(op).Field("alpha", alpha, validation.OpenUnit()).Err()
}

func tCDF(df float64) func(float64) float64 {
	return distribution.StudentT{DF: df}.CDF
}

// meanSD returns mean and sample SD, requiring n >= 2
func meanSD(op, name string, values []float64) (mean, sd float64, err error) {
	if len(values) < 2 {
		return 0, 0, smerror.Undefined(op, "need at least two observations").
			WithDetail("sample", name).
			WithDetail("n", len(values))
	}
	sd, err = mathx.StdDev(values, true)
	if err != nil {
		return 0, 0, err
	}
	return mathx.MustMean(values), sd, nil
}

// OneSampleT tests H0: μ = mu0 against the alternative
func OneSampleT(values []float64, mu0, alpha float64, alt Alternative) (HypothesisTest, error) {
	const op = "inference.OneSampleT"
	if err := checkAlpha(op, alpha, alt); err != nil {
		return HypothesisTest{}, err
	}
	mean, sd, err := meanSD(op, "x", values)
	if err != nil {
		return HypothesisTest{}, err
	}
	if sd == 0 {
		return HypothesisTest{}, smerror.Undefined(op, "sample has zero variance")
	}
	n := float64(len(values))
	h := HypothesisTest{
		Name:        "one-sample t",
		Null:        fmt.Sprintf("μ = %g", mu0),
		AltText:     fmt.Sprintf("μ %s %g", alt.symbol(), mu0),
		Alternative: alt,
		Statistic:   (mean - mu0) / (sd / math.Sqrt(n)),
		DF:          n - 1,
		Alpha:       alpha,
	}
	return decide(h, tCDF(h.DF)), nil
}

// TwoSampleT is Welch's unequal-variance test of H0: μx = μy
func TwoSampleT(x, y []float64, alpha float64, alt Alternative) (HypothesisTest, error) {
	const op = "inference.TwoSampleT"
	if err := checkAlpha(op, alpha, alt); err != nil {
		return HypothesisTest{}, err
	}
	m1, s1, err := meanSD(op, "x", x)
	if err != nil {
		return HypothesisTest{}, err
	}
	m2, s2, err := meanSD(op, "y", y)
	if err != nil {
		return HypothesisTest{}, err
	}
	n1, n2 := float64(len(x)), float64(len(y))
	v1, v2 := s1*s1/n1, s2*s2/n2
	if v1+v2 == 0 {
		return HypothesisTest{}, smerror.Undefined(op, "both samples have zero variance")
	}
	df := (v1 + v2) * (v1 + v2) / (v1*v1/(n1-1) + v2*v2/(n2-1))
	h := HypothesisTest{
		Name:        "Welch two-sample t",
		Null:        "μx = μy",
		AltText:     fmt.Sprintf("μx %s μy", alt.symbol()),
		Alternative: alt,
		Statistic:   (m1 - m2) / math.Sqrt(v1+v2),
		DF:          df,
		Alpha:       alpha,
	}
	return decide(h, tCDF(df)), nil
}

// PooledTwoSampleT is the equal-variance two-sample t test
func PooledTwoSampleT(x, y []float64, alpha float64, alt Alternative) (HypothesisTest, error) {
	const op = "inference.PooledTwoSampleT"
	if err := checkAlpha(op, alpha, alt); err != nil {
		return HypothesisTest{}, err
	}
	m1, s1, err := meanSD(op, "x", x)
	if err != nil {
		return HypothesisTest{}, err
	}
	m2, s2, err := meanSD(op, "y", y)
	if err != nil {
		return HypothesisTest{}, err
	}
	n1, n2 := float64(len(x)), float64(len(y))
	df := n1 + n2 - 2
	sp2 := ((n1-1)*s1*s1 + (n2-1)*s2*s2) / df
	if sp2 == 0 {
		return HypothesisTest{}, smerror.Undefined(op, "pooled variance is zero")
	}
	h := HypothesisTest{
		Name:        "pooled two-sample t",
		Null:        "μx = μy",
		AltText:     fmt.Sprintf("μx %s μy", alt.symbol()),
		Alternative: alt,
		Statistic:   (m1 - m2) / math.Sqrt(sp2*(1/n1+1/n2)),
		DF:          df,
		Alpha:       alpha,
	}
	return decide(h, tCDF(df)), nil
}

func checkCount(op, name string, k, n int) error {
	if n < 1 || k < 0 || k > n {
		return smerror.Domain(op, "successes must lie in [0, n] with n >= 1").
			WithDetail("sample", name).
			WithDetail("successes", k).
			WithDetail("n", n)
	}
	return nil
}

// OneProportionZ tests H0: p = p0 with the normal approximation
func OneProportionZ(successes, n int, p0, alpha float64, alt Alternative) (HypothesisTest, error) {
	const op = "inference.OneProportionZ"
	if err := checkAlpha(op, alpha, alt); err != nil {
		return HypothesisTest{}, err
	}
	if err := checkCount(op, "x", successes, n); err != nil {
		return HypothesisTest{}, err
	}
	if err := validation.NewParamCheck(op).Field("p0", p0, validation.OpenUnit()).Err(); err != nil {
		return HypothesisTest{}, err
	}
	phat := float64(successes) / float64(n)
	se := math.Sqrt(p0 * (1 - p0) / float64(n))
	h := HypothesisTest{
		Name:        "one-proportion z",
		Null:        fmt.Sprintf("p = %g", p0),
		AltText:     fmt.Sprintf("p %s %g", alt.symbol(), p0),
		Alternative: alt,
		Statistic:   (phat - p0) / se,
		Alpha:       alpha,
	}
	return decide(h, distribution.StandardNormal.CDF), nil
}

// TwoProportionZ tests H0: p1 = p2 using the pooled proportion
func TwoProportionZ(x1, n1, x2, n2 int, alpha float64, alt Alternative) (HypothesisTest, error) {
	const op = "inference.TwoProportionZ"
	if err := checkAlpha(op, alpha, alt); err != nil {
		return HypothesisTest{}, err
	}
	if err := checkCount(op, "first", x1, n1); err != nil {
		return HypothesisTest{}, err
	}
	if err := checkCount(op, "second", x2, n2); err != nil {
		return HypothesisTest{}, err
	}
	p1, p2 := float64(x1)/float64(n1), float64(x2)/float64(n2)
	pool := float64(x1+x2) / float64(n1+n2)
	se := math.Sqrt(pool * (1 - pool) * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return HypothesisTest{}, smerror.Undefined(op, "pooled proportion is 0 or 1").
			WithDetail("pooled", pool)
	}
	h := HypothesisTest{
		Name:        "two-proportion z",
		Null:        "p1 = p2",
		AltText:     fmt.Sprintf("p1 %s p2", alt.symbol()),
		Alternative: alt,
		Statistic:   (p1 - p2) / se,
		Alpha:       alpha,
	}
	return decide(h, distribution.StandardNormal.CDF), nil
}

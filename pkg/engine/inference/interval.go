package inference

import (
	"math"
	"math/rand/v2"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/core/validation"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/distribution"
)

// LargeSample is the n at which a t interval switches to z
const LargeSample = 30

// Critical value kinds
const (
	KindZ = "z"
	KindT = "t"
)

// StandardError is SD/√n with the population (n) or sample (n−1) SD
func StandardError(values []float64, population bool) (float64, error) {
	sd, err := mathx.StdDev(values, !population)
	if err != nil {
		return 0, smerror.Wrap(err, "standard error").WithOperation("inference.StandardError")
	}
	return sd / math.Sqrt(float64(len(values))), nil
}

// Interval is a two-sided confidence interval Estimate ± Margin
type Interval struct {
	Estimate float64 `json:"estimate" yaml:"estimate"`
	Margin   float64 `json:"margin" yaml:"margin"`
	Lower    float64 `json:"lower" yaml:"lower"`
	Upper    float64 `json:"upper" yaml:"upper"`
	Level    float64 `json:"level" yaml:"level"`
	Critical float64 `json:"critical" yaml:"critical"`
	Kind     string  `json:"kind" yaml:"kind"`
	DF       int     `json:"df,omitempty" yaml:"df,omitempty"`
}

// Contains reports whether v lies inside the closed interval
func (i Interval) Contains(v float64) bool {
	return v >= i.Lower && v <= i.Upper
}

// zCritical returns z with P(|Z| <= z) = level
func zCritical(level float64) (float64, error) {
	return distribution.StandardNormal.Quantile(1 - (1-level)/2)
}

func tCritical(level float64, df int) (float64, error) {
	return distribution.StudentT{DF: float64(df)}.Quantile(1 - (1-level)/2)
}

// ConfidenceInterval builds mean ± critical·se. The z critical value is used
// when the population SD is known or n >= LargeSample; otherwise t with n−1
// degrees of freedom.
func ConfidenceInterval(mean, se, level float64, n int, sigmaKnown bool) (Interval, error) {
	const op = "inference.ConfidenceInterval"
	err := validation.NewParamCheck(op).
		Field("mean", mean, validation.Finite()).
		Field("se", se, validation.Finite(), validation.NonNegative()).
		Field("level", level, validation.OpenUnit()).
		Field("n", n, validation.AtLeast(1)).
		Err()
	if err != nil {
		return Interval{}, err
	}

	iv := Interval{Estimate: mean, Level: level, Kind: KindZ}
	if sigmaKnown || n >= LargeSample {
		iv.Critical, err = zCritical(level)
	} else {
		if n < 2 {
			return Interval{}, smerror.Undefined(op, "a t interval needs at least two observations").
				WithDetail("n", n)
		}
		iv.Kind, iv.DF = KindT, n-1
		iv.Critical, err = tCritical(level, n-1)
	}
	if err != nil {
		return Interval{}, err
	}
	iv.Margin = iv.Critical * se
	iv.Lower, iv.Upper = mean-iv.Margin, mean+iv.Margin
	return iv, nil
}

// MeanConfidenceInterval is the interval for the mean of values with
// unknown population SD.
func MeanConfidenceInterval(values []float64, level float64) (Interval, error) {
	if len(values) < 2 {
		return Interval{}, smerror.Undefined("inference.MeanConfidenceInterval", "need at least two values").
			WithDetail("n", len(values))
	}
	se, err := StandardError(values, false)
	if err != nil {
		return Interval{}, err
	}
	return ConfidenceInterval(mathx.MustMean(values), se, level, len(values), false)
}

// Statistic summarizes a sample into one number
type Statistic func(sample []float64) float64

// Mean is the arithmetic mean as a Statistic
func Mean(sample []float64) float64 { return mathx.MustMean(sample) }

// Median is the median as a Statistic
func Median(sample []float64) float64 {
	m, _ := mathx.Median(sample)
	return m
}

// MaxResamples caps bootstrap resampling
const MaxResamples = 10000

// BootstrapResult is a percentile bootstrap interval
type BootstrapResult struct {
	Estimate      float64 `json:"estimate" yaml:"estimate"`
	Lower         float64 `json:"lower" yaml:"lower"`
	Upper         float64 `json:"upper" yaml:"upper"`
	Level         float64 `json:"level" yaml:"level"`
	Resamples     int     `json:"resamples" yaml:"resamples"`
	StandardError float64 `json:"standard_error" yaml:"standard_error"`
}

// Contains reports whether v lies inside the interval
func (b BootstrapResult) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// BootstrapCI is BootstrapCIWith for the sample mean
func BootstrapCI(sample []float64, nResamples int, level float64, rng *rand.Rand) (BootstrapResult, error) {
	return BootstrapCIWith(sample, nResamples, level, Mean, rng)
}

// BootstrapCIWith resamples with replacement nResamples times (capped at
// MaxResamples) and returns the percentile interval of stat.
func BootstrapCIWith(sample []float64, nResamples int, level float64, stat Statistic, rng *rand.Rand) (BootstrapResult, error) {
	const op = "inference.BootstrapCI"
	if rng == nil || stat == nil {
		return BootstrapResult{}, smerror.InvalidInput(op, "random source and statistic are required")
	}
	err := validation.NewParamCheck(op).
		Field("sample", sample, validation.MinLength(1)).
		Field("resamples", nResamples, validation.AtLeast(1)).
		Field("level", level, validation.OpenUnit()).
		Err()
	if err != nil {
		return BootstrapResult{}, err
	}
	if nResamples > MaxResamples {
		nResamples = MaxResamples
	}

	n := len(sample)
	buf := make([]float64, n)
	stats := make([]float64, nResamples)
	for r := range stats {
		for i := range buf {
			buf[i] = sample[rng.IntN(n)]
		}
		stats[r] = stat(buf)
	}

	alpha := 1 - level
	lower, _ := mathx.Quantile(stats, alpha/2)
	upper, _ := mathx.Quantile(stats, 1-alpha/2)
	se := 0.0
	if nResamples > 1 {
		se, _ = mathx.StdDev(stats, true)
	}
	return BootstrapResult{
		Estimate:      stat(sample),
		Lower:         lower,
		Upper:         upper,
		Level:         level,
		Resamples:     nResamples,
		StandardError: se,
	}, nil
}

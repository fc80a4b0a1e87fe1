package engine

import (
	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/distribution"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/inference"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/regression"
)

// Distribution constructs a family with the given parameters
func (e *Engine) Distribution(family distribution.Family, params map[string]float64) (distribution.Distribution, error) {
	e.metrics.observeCall("distribution")
	d, err := distribution.New(family, params)
	if err != nil {
		e.fail("distribution", err)
		return nil, err
	}
	return d, nil
}

// DistributionSample draws n values; seed 0 uses the configured seed
func (e *Engine) DistributionSample(family distribution.Family, params map[string]float64, n int, seed uint64) ([]float64, error) {
	d, err := e.Distribution(family, params)
	if err != nil {
		return nil, err
	}
	seed = e.seed(seed)
	return memo(e, "sample", func() ([]float64, error) {
		return d.Sample(n, e.Rand(seed))
	}, string(family), d.Params(), n, seed)
}

// CLTOptions sizes a central limit demo. Zero fields use the settings.
type CLTOptions struct {
	SampleSize  int
	Repetitions int
	Bins        int
	Seed        uint64
}

// CLT runs the central limit demo for a distribution
func (e *Engine) CLT(family distribution.Family, params map[string]float64, opts CLTOptions) (distribution.CLTResult, error) {
	d, err := e.Distribution(family, params)
	if err != nil {
		return distribution.CLTResult{}, err
	}
	cfg := e.settings.Distribution
	if opts.SampleSize == 0 {
		opts.SampleSize = cfg.CLTSampleSize
	}
	if opts.Repetitions == 0 {
		opts.Repetitions = cfg.CLTRepetitions
	}
	if opts.Bins == 0 {
		opts.Bins = cfg.CLTBins
	}
	opts.Seed = e.seed(opts.Seed)
	return memo(e, "clt", func() (distribution.CLTResult, error) {
		return distribution.CentralLimitDemo(d, opts.SampleSize, opts.Repetitions, opts.Bins, e.Rand(opts.Seed))
	}, string(family), d.Params(), opts.SampleSize, opts.Repetitions, opts.Bins, opts.Seed)
}

func (e *Engine) level(level float64) float64 {
	if level == 0 {
		return e.settings.Inference.Level
	}
	return level
}

func (e *Engine) alpha(alpha float64) float64 {
	if alpha == 0 {
		return e.settings.Inference.Alpha
	}
	return alpha
}

// Bootstrap computes a percentile interval for the sample mean. Zero
// arguments use the configured resamples, level and seed.
func (e *Engine) Bootstrap(sample []float64, resamples int, level float64, seed uint64) (inference.BootstrapResult, error) {
	if resamples == 0 {
		resamples = e.settings.Inference.BootstrapResamples
	}
	level = e.level(level)
	seed = e.seed(seed)
	return memo(e, "bootstrap", func() (inference.BootstrapResult, error) {
		return inference.BootstrapCI(sample, resamples, level, e.Rand(seed))
	}, sample, resamples, level, seed)
}

// MeanInterval returns the t interval for the sample mean
func (e *Engine) MeanInterval(sample []float64, level float64) (inference.Interval, error) {
	level = e.level(level)
	return memo(e, "interval", func() (inference.Interval, error) {
		return inference.MeanConfidenceInterval(sample, level)
	}, sample, level)
}

// OneSampleT tests the sample mean against mu0
func (e *Engine) OneSampleT(sample []float64, mu0, alpha float64, alt inference.Alternative) (inference.HypothesisTest, error) {
	alpha = e.alpha(alpha)
	return memo(e, "ttest", func() (inference.HypothesisTest, error) {
		return inference.OneSampleT(sample, mu0, alpha, alt)
	}, "one", sample, mu0, alpha, alt)
}

// TwoSampleT compares two means, Welch by default or pooled on request
func (e *Engine) TwoSampleT(x, y []float64, alpha float64, alt inference.Alternative, pooled bool) (inference.HypothesisTest, error) {
	alpha = e.alpha(alpha)
	return memo(e, "ttest", func() (inference.HypothesisTest, error) {
		if pooled {
			return inference.PooledTwoSampleT(x, y, alpha, alt)
		}
		return inference.TwoSampleT(x, y, alpha, alt)
	}, "two", x, y, alpha, alt, pooled)
}

// OneProportionZ tests an observed proportion against p0
func (e *Engine) OneProportionZ(successes, n int, p0, alpha float64, alt inference.Alternative) (inference.HypothesisTest, error) {
	alpha = e.alpha(alpha)
	return memo(e, "ztest", func() (inference.HypothesisTest, error) {
		return inference.OneProportionZ(successes, n, p0, alpha, alt)
	}, "one", successes, n, p0, alpha, alt)
}

// TwoProportionZ compares two observed proportions
func (e *Engine) TwoProportionZ(x1, n1, x2, n2 int, alpha float64, alt inference.Alternative) (inference.HypothesisTest, error) {
	alpha = e.alpha(alpha)
	return memo(e, "ztest", func() (inference.HypothesisTest, error) {
		return inference.TwoProportionZ(x1, n1, x2, n2, alpha, alt)
	}, "two", x1, n1, x2, n2, alpha, alt)
}

// PowerReport is the power of a design together with the sample size
// needed to reach the target power
type PowerReport struct {
	Effect      float64             `json:"effect" yaml:"effect"`
	Magnitude   inference.Magnitude `json:"magnitude" yaml:"magnitude"`
	N           int                 `json:"n" yaml:"n"`
	Alpha       float64             `json:"alpha" yaml:"alpha"`
	Alternative string              `json:"alternative" yaml:"alternative"`
	Power       float64             `json:"power" yaml:"power"`
	Target      float64             `json:"target,omitempty" yaml:"target,omitempty"`
	RequiredN   int                 `json:"required_n,omitempty" yaml:"required_n,omitempty"`
}

// Power computes the one-sample power at n and, when target is in (0, 1),
// the sample size required to reach it
func (e *Engine) Power(effect float64, n int, alpha float64, alt inference.Alternative, target float64) (PowerReport, error) {
	alpha = e.alpha(alpha)
	return memo(e, "power", func() (PowerReport, error) {
		p, err := inference.Power(effect, n, alpha, alt)
		if err != nil {
			return PowerReport{}, err
		}
		report := PowerReport{
			Effect:      effect,
			Magnitude:   inference.InterpretEffect(effect),
			N:           n,
			Alpha:       alpha,
			Alternative: alt.String(),
			Power:       p,
		}
		if target > 0 {
			req, err := inference.RequiredSampleSize(effect, alpha, target, alt)
			if err != nil {
				return PowerReport{}, err
			}
			report.Target = target
			report.RequiredN = req
		}
		return report, nil
	}, effect, n, alpha, alt, target)
}

// Summarize returns the five-number summary with outliers
func (e *Engine) Summarize(values []float64) (inference.Summary, error) {
	return memo(e, "summary", func() (inference.Summary, error) {
		return inference.Summarize(values)
	}, values)
}

// Fit is a regression model with its influence diagnostics
type Fit struct {
	Model       regression.Model       `json:"model" yaml:"model"`
	Cooks       []float64              `json:"cooks_distances,omitempty" yaml:"cooks_distances,omitempty"`
	Threshold   float64                `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Influential []regression.Influence `json:"influential,omitempty" yaml:"influential,omitempty"`
}

// Regress fits y on x. Influence diagnostics need at least three points
// and are omitted below that.
func (e *Engine) Regress(x, y []float64) (Fit, error) {
	return memo(e, "regress", func() (Fit, error) {
		model, err := regression.LinearRegression(x, y)
		if err != nil {
			return Fit{}, err
		}
		fit := Fit{Model: model}
		if model.N <= 2 {
			return fit, nil
		}
		cooks, err := regression.CooksDistances(x, y)
		if err != nil {
			if smerror.IsUndefined(err) {
				return fit, nil
			}
			return Fit{}, err
		}
		influential, err := regression.InfluentialPoints(x, y)
		if err != nil {
			return Fit{}, err
		}
		fit.Cooks = cooks
		fit.Threshold = regression.InfluentialThreshold(model.N)
		fit.Influential = influential
		return fit, nil
	}, x, y)
}

// Anscombe fits all four datasets of the quartet
func (e *Engine) Anscombe() ([]regression.Dataset, []Fit, error) {
	sets := regression.AnscombeQuartet()
	fits := make([]Fit, len(sets))
	for i, ds := range sets {
		fit, err := e.Regress(ds.X, ds.Y)
		if err != nil {
			return nil, nil, smerror.Wrap(err, "anscombe "+ds.Name)
		}
		fits[i] = fit
	}
	return sets, fits, nil
}

package distribution

import (
	"fmt"
	"math"
	"math/rand/v2"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
)

// Central limit demonstration caps
const (
	MaxRepetitions   = 5000
	MaxCLTSampleSize = 1000
	MaxCLTBins       = 100
	DefaultCLTBins   = 30
)

// CLTResult aggregates the sample means of a central limit demonstration.
// Overlay is the normal density N(TheoreticalMean, TheoreticalSE²) at each
// bin center, for drawing over the histogram.
type CLTResult struct {
	Family          Family    `json:"family" yaml:"family"`
	SampleSize      int       `json:"sample_size" yaml:"sample_size"`
	Repetitions     int       `json:"repetitions" yaml:"repetitions"`
	Means           []float64 `json:"means" yaml:"means"`
	Histogram       Histogram `json:"histogram" yaml:"histogram"`
	Overlay         []float64 `json:"overlay" yaml:"overlay"`
	MeanOfMeans     float64   `json:"mean_of_means" yaml:"mean_of_means"`
	SDOfMeans       float64   `json:"sd_of_means" yaml:"sd_of_means"`
	TheoreticalMean float64   `json:"theoretical_mean" yaml:"theoretical_mean"`
	TheoreticalSE   float64   `json:"theoretical_se" yaml:"theoretical_se"`
}

// CentralLimitDemo draws repetitions samples of sampleSize from dist and
// bins their means. bins <= 0 means DefaultCLTBins.
func CentralLimitDemo(dist Distribution, sampleSize, repetitions, bins int, rng *rand.Rand) (CLTResult, error) {
	const op = "distribution.CentralLimitDemo"
	switch {
	case dist == nil:
		return CLTResult{}, smerror.InvalidInput(op, "distribution is nil")
	case rng == nil:
		return CLTResult{}, smerror.InvalidInput(op, "random source is nil")
	case sampleSize < 1 || sampleSize > MaxCLTSampleSize:
		return CLTResult{}, smerror.Domain(op, fmt.Sprintf("sample size must be between 1 and %d", MaxCLTSampleSize)).
			WithDetail("sample_size", sampleSize)
	case repetitions < 2 || repetitions > MaxRepetitions:
		return CLTResult{}, smerror.Domain(op, fmt.Sprintf("repetitions must be between 2 and %d", MaxRepetitions)).
			WithDetail("repetitions", repetitions)
	}
	if bins <= 0 {
		bins = DefaultCLTBins
	}
	if bins > MaxCLTBins {
		return CLTResult{}, smerror.Domain(op, fmt.Sprintf("bins must be at most %d", MaxCLTBins)).
			WithDetail("bins", bins)
	}
	variance := dist.Variance()
	if !mathx.IsFinite(variance) {
		return CLTResult{}, smerror.Domain(op, "the central limit theorem needs a finite variance").
			WithDetail("family", string(dist.Family()))
	}

	means := make([]float64, repetitions)
	for i := range means {
		sample, err := dist.Sample(sampleSize, rng)
		if err != nil {
			return CLTResult{}, err
		}
		means[i] = mathx.MustMean(sample)
	}

	hist, err := NewHistogram(means, bins)
	if err != nil {
		return CLTResult{}, err
	}
	mom := mathx.MustMean(means)
	sd, _ := mathx.StdDev(means, true)

	res := CLTResult{
		Family:          dist.Family(),
		SampleSize:      sampleSize,
		Repetitions:     repetitions,
		Means:           means,
		Histogram:       hist,
		MeanOfMeans:     mom,
		SDOfMeans:       sd,
		TheoreticalMean: dist.Mean(),
		TheoreticalSE:   math.Sqrt(variance / float64(sampleSize)),
	}
	res.Overlay = make([]float64, bins)
	if res.TheoreticalSE > 0 {
		overlay := Normal{Mu: res.TheoreticalMean, Sigma: res.TheoreticalSE}
		for i, c := range hist.Centers() {
			res.Overlay[i] = overlay.PDF(c)
		}
	}
	return res, nil
}

package distribution

import (
	"math"
	"testing"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
)

func TestSampleMomentsAndSupport(t *testing.T) {
	const n = 20000
	for _, d := range allDistributions(t) {
		t.Run(string(d.Family()), func(t *testing.T) {
			xs, err := d.Sample(n, mathx.NewRand(7))
			if err != nil {
				t.Fatal(err)
			}
			if len(xs) != n {
				t.Fatalf("len = %d, want %d", len(xs), n)
			}
			for _, x := range xs {
				if !d.Support().Contains(x) {
					t.Fatalf("sample %v outside support %v", x, d.Support())
				}
			}
			mean := mathx.MustMean(xs)
			se := math.Sqrt(d.Variance() / n)
			if math.Abs(mean-d.Mean()) > 5*se {
				t.Errorf("sample mean %v, want %v ± %v", mean, d.Mean(), 5*se)
			}
		})
	}
}

func TestSampleReproducible(t *testing.T) {
	for _, d := range allDistributions(t) {
		a, _ := d.Sample(50, mathx.NewRand(99))
		b, _ := d.Sample(50, mathx.NewRand(99))
		for i := range a {
			if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
				t.Errorf("%s: draw %d differs with the same seed", d.Family(), i)
				break
			}
		}
	}
}

func TestSampleArgs(t *testing.T) {
	if _, err := StandardNormal.Sample(3, nil); !smerror.IsInvalidInput(err) {
		t.Errorf("nil rng error = %v", err)
	}
	if _, err := StandardNormal.Sample(-1, mathx.NewRand(1)); !smerror.IsDomain(err) {
		t.Errorf("negative n error = %v", err)
	}
	xs, err := StandardNormal.Sample(0, mathx.NewRand(1))
	if err != nil || len(xs) != 0 {
		t.Errorf("Sample(0) = %v, %v", xs, err)
	}
}

func TestNewHistogram(t *testing.T) {
	h, err := NewHistogram([]float64{0, 1, 1, 2, 3, 4}, 4)
	if err != nil {
		t.Fatal(err)
	}
	wantCounts := []int{1, 2, 1, 2}
	for i, c := range wantCounts {
		if h.Counts[i] != c {
			t.Errorf("Counts = %v, want %v", h.Counts, wantCounts)
			break
		}
	}
	if h.Width != 1 || len(h.Edges) != 5 || h.Edges[4] != 4 {
		t.Errorf("Width = %v Edges = %v", h.Width, h.Edges)
	}
	area := 0.0
	for _, d := range h.Densities {
		area += d * h.Width
	}
	if math.Abs(area-1) > 1e-12 {
		t.Errorf("density area = %v, want 1", area)
	}

	flat, err := NewHistogram([]float64{2, 2, 2}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if flat.Min != 1.5 || flat.Max != 2.5 || flat.Counts[1] != 3 {
		t.Errorf("constant data histogram = %+v", flat)
	}

	if _, err := NewHistogram(nil, 3); !smerror.IsUndefined(err) {
		t.Errorf("empty values error = %v", err)
	}
	if _, err := NewHistogram([]float64{1}, 0); !smerror.IsDomain(err) {
		t.Errorf("zero bins error = %v", err)
	}
	if _, err := NewHistogram([]float64{1, math.Inf(1)}, 3); !smerror.IsDomain(err) {
		t.Errorf("infinite value error = %v", err)
	}
}

func TestCentralLimitDemo(t *testing.T) {
	skewed := Exponential{Lambda: 1}
	res, err := CentralLimitDemo(skewed, 30, 2000, 25, mathx.NewRand(2026))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Means) != 2000 || res.Histogram.Total != 2000 || len(res.Overlay) != 25 {
		t.Fatalf("sizes: means %d total %d overlay %d", len(res.Means), res.Histogram.Total, len(res.Overlay))
	}
	if math.Abs(res.TheoreticalSE-1/math.Sqrt(30)) > 1e-15 {
		t.Errorf("TheoreticalSE = %v", res.TheoreticalSE)
	}
	if math.Abs(res.MeanOfMeans-1) > 0.02 {
		t.Errorf("MeanOfMeans = %v, want ≈ 1", res.MeanOfMeans)
	}
	if math.Abs(res.SDOfMeans-res.TheoreticalSE)/res.TheoreticalSE > 0.1 {
		t.Errorf("SDOfMeans = %v, want ≈ %v", res.SDOfMeans, res.TheoreticalSE)
	}

	again, _ := CentralLimitDemo(skewed, 30, 2000, 25, mathx.NewRand(2026))
	if math.Float64bits(again.MeanOfMeans) != math.Float64bits(res.MeanOfMeans) {
		t.Error("same seed produced a different demonstration")
	}
}

func TestCentralLimitDemoErrors(t *testing.T) {
	rng := mathx.NewRand(1)
	tests := []struct {
		name  string
		d     Distribution
		n     int
		reps  int
		bins  int
		check func(error) bool
	}{
		{"too many repetitions", StandardNormal, 10, MaxRepetitions + 1, 10, smerror.IsDomain},
		{"zero sample size", StandardNormal, 0, 100, 10, smerror.IsDomain},
		{"too many bins", StandardNormal, 10, 100, MaxCLTBins + 1, smerror.IsDomain},
		{"infinite variance", StudentT{DF: 1.5}, 10, 100, 10, smerror.IsDomain},
		{"nil distribution", nil, 10, 100, 10, smerror.IsInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CentralLimitDemo(tt.d, tt.n, tt.reps, tt.bins, rng)
			if !tt.check(err) {
				t.Errorf("CentralLimitDemo() error = %v", err)
			}
		})
	}
}

func BenchmarkNormalQuantile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = StandardNormal.Quantile(0.975)
	}
}

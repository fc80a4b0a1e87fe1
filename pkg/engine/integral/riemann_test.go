package integral

import (
	"math"
	"testing"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

var presets = catalog.New()

func preset(id string) *catalog.Function { return presets.MustGet(id) }

func TestLeftSumOfIdentity(t *testing.T) {
	x := catalog.Func(func(x float64) float64 { return x })
	got, err := ComputeRiemannSum(x, 0, 2, 4, Left)
	if err != nil {
		t.Fatal(err)
	}
	if got.Value != 1.5 {
		t.Errorf("left sum = %v, want 1.5", got.Value)
	}
	if got.DeltaX != 0.5 || len(got.Rectangles) != 4 {
		t.Errorf("DeltaX = %v, rectangles = %d", got.DeltaX, len(got.Rectangles))
	}
	wantX := []float64{0, 0.5, 1, 1.5}
	for i, r := range got.Rectangles {
		if r.SampleX != wantX[i] || r.Height != wantX[i] {
			t.Errorf("rectangle %d = %+v", i, r)
		}
	}
	if got.HasExact {
		t.Error("plain Func should not carry an exact value")
	}
}

func TestMethodsOnLinear(t *testing.T) {
	// ∫₀² (2x+1) dx = 6
	tests := []struct {
		method Method
		want   float64
	}{
		{Left, 5},
		{Right, 7},
		{Midpoint, 6},
		{Trapezoidal, 6},
		{Simpson, 6},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			got, err := ComputeRiemannSum(preset("linear"), 0, 2, 4, tt.method)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got.Value-tt.want) > 1e-12 {
				t.Errorf("Value = %v, want %v", got.Value, tt.want)
			}
			if !got.HasExact || got.Exact != 6 {
				t.Errorf("Exact = %v (has %v), want 6", got.Exact, got.HasExact)
			}
		})
	}
}

func TestRectanglesSumToValue(t *testing.T) {
	for _, m := range Methods() {
		got, err := ComputeRiemannSum(preset("gaussian"), -1, 2, 10, m)
		if err != nil {
			t.Fatal(err)
		}
		total := 0.0
		for _, r := range got.Rectangles {
			total += r.Height * (r.X1 - r.X0)
		}
		if math.Abs(total-got.Value) > 1e-12 {
			t.Errorf("%s: rectangles sum to %v, value %v", m, total, got.Value)
		}
	}
}

func TestSimpsonBeatsTrapezoidal(t *testing.T) {
	sq := preset("square")
	for _, n := range []int{2, 4, 8, 16, 64, 200} {
		s, err := ComputeRiemannSum(sq, 0, 1, n, Simpson)
		if err != nil {
			t.Fatal(err)
		}
		tr, _ := ComputeRiemannSum(sq, 0, 1, n, Trapezoidal)
		if math.Abs(s.Value-1.0/3.0) > 1e-14 {
			t.Errorf("n=%d: Simpson = %v, want 1/3", n, s.Value)
		}
		if s.Error >= tr.Error {
			t.Errorf("n=%d: Simpson error %v not below trapezoidal %v", n, s.Error, tr.Error)
		}
	}
}

func TestSignedArea(t *testing.T) {
	sin := preset("sin")

	full, _ := ComputeRiemannSum(sin, 0, 2*math.Pi, 100, Midpoint)
	if math.Abs(full.Value) > 1e-12 {
		t.Errorf("∫ sin over a full period = %v, want 0", full.Value)
	}

	neg, _ := ComputeRiemannSum(sin, math.Pi, 2*math.Pi, 100, Simpson)
	if math.Abs(neg.Value+2) > 1e-6 {
		t.Errorf("∫ sin over [π, 2π] = %v, want -2", neg.Value)
	}

	fwd, _ := ComputeRiemannSum(sin, 0, 1, 10, Trapezoidal)
	rev, _ := ComputeRiemannSum(sin, 1, 0, 10, Trapezoidal)
	if math.Abs(fwd.Value+rev.Value) > 1e-14 {
		t.Errorf("reversed bounds: %v vs %v", fwd.Value, rev.Value)
	}
	if rev.DeltaX >= 0 {
		t.Errorf("reversed DeltaX = %v, want negative", rev.DeltaX)
	}
}

func TestEmptyInterval(t *testing.T) {
	got, err := ComputeRiemannSum(preset("ln"), 3, 3, 10, Left)
	if err != nil {
		t.Fatal(err)
	}
	if got.Value != 0 || len(got.Rectangles) != 0 {
		t.Errorf("a == b gives %+v", got)
	}
}

func TestComputeRiemannSumErrors(t *testing.T) {
	sq := preset("square")
	tests := []struct {
		name   string
		fn     catalog.Evaluable
		a, b   float64
		n      int
		method Method
		check  func(error) bool
	}{
		{"odd simpson", sq, 0, 1, 3, Simpson, smerror.IsDomain},
		{"zero n", sq, 0, 1, 0, Left, smerror.IsDomain},
		{"too many", sq, 0, 1, MaxPartitions + 1, Left, smerror.IsDomain},
		{"infinite bound", sq, 0, math.Inf(1), 10, Left, smerror.IsDomain},
		{"bad method", sq, 0, 1, 10, Method("gauss"), smerror.IsInvalidInput},
		{"nil function", nil, 0, 1, 10, Left, smerror.IsInvalidInput},
		{"pole", preset("reciprocal"), -1, 1, 2, Trapezoidal, smerror.IsUndefined},
		{"outside domain", preset("ln"), -1, 1, 4, Midpoint, smerror.IsUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeRiemannSum(tt.fn, tt.a, tt.b, tt.n, tt.method)
			if !tt.check(err) {
				t.Errorf("ComputeRiemannSum() error = %v", err)
			}
		})
	}
}

func TestComputeRiemannSumExact(t *testing.T) {
	got, err := ComputeRiemannSumExact(preset("cube"), 0, 1, 10, Right, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if !got.HasExact || got.Exact != 0.25 {
		t.Errorf("Exact = %v", got.Exact)
	}
	if math.Abs(got.Error-math.Abs(got.Value-0.25)) > 0 {
		t.Errorf("Error = %v, want |%v - 0.25|", got.Error, got.Value)
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		if got, err := ParseMethod(string(m)); err != nil || got != m {
			t.Errorf("ParseMethod(%q) = %v, %v", m, got, err)
		}
	}
	if got, _ := ParseMethod("trapezoid"); got != Trapezoidal {
		t.Errorf("ParseMethod(trapezoid) = %v", got)
	}
}

func TestComputeRiemannSumIdempotent(t *testing.T) {
	a, _ := ComputeRiemannSum(preset("exp"), 0, 1, 200, Simpson)
	b, _ := ComputeRiemannSum(preset("exp"), 0, 1, 200, Simpson)
	if math.Float64bits(a.Value) != math.Float64bits(b.Value) {
		t.Errorf("repeated sums differ: %v vs %v", a.Value, b.Value)
	}
}

func BenchmarkSimpson(b *testing.B) {
	fn := preset("gaussian")
	for i := 0; i < b.N; i++ {
		_, _ = ComputeRiemannSum(fn, -2, 2, MaxPartitions, Simpson)
	}
}

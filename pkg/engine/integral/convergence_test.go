package integral

import (
	"fmt"
	"math"
	"testing"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

func TestConvergenceSequenceErrorShrinks(t *testing.T) {
	for _, m := range []Method{Left, Midpoint, Trapezoidal, Simpson} {
		conv, err := ConvergenceSequence(preset("sin"), 0, math.Pi, m, nil, nil)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if conv.ReferenceKind != ReferenceExact || math.Abs(conv.Reference-2) > 1e-15 {
			t.Errorf("%s: reference = %v (%s)", m, conv.Reference, conv.ReferenceKind)
		}
		if len(conv.Points) != len(DefaultPartitions) {
			t.Fatalf("%s: %d points", m, len(conv.Points))
		}
		for i := 1; i < len(conv.Points); i++ {
			if conv.Points[i].Error > conv.Points[i-1].Error {
				t.Errorf("%s: error grew from n=%d to n=%d", m, conv.Points[i-1].N, conv.Points[i].N)
			}
		}
	}
}

func TestConvergenceSequenceNumericalReference(t *testing.T) {
	// sinc has no elementary antiderivative; Si(1) = 0.946083070367183
	sinc := preset("sinc")
	conv, err := ConvergenceSequence(sinc, 0.5, 1, Trapezoidal, []int{4, 16, 64}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if conv.ReferenceKind != ReferenceNumerical {
		t.Errorf("ReferenceKind = %s, want numerical", conv.ReferenceKind)
	}
	// Si(1) - Si(0.5)
	want := 0.946083070367183 - 0.493107418043067
	if math.Abs(conv.Reference-want) > 1e-12 {
		t.Errorf("Reference = %v, want %v", conv.Reference, want)
	}
}

func TestConvergenceSequenceExplicitExact(t *testing.T) {
	exact := 1.0 / 3.0
	x2 := catalog.Func(func(x float64) float64 { return x * x })
	conv, err := ConvergenceSequence(x2, 0, 1, Right, []int{10, 100}, &exact)
	if err != nil {
		t.Fatal(err)
	}
	if conv.Reference != exact || conv.ReferenceKind != ReferenceExact {
		t.Errorf("Reference = %v (%s)", conv.Reference, conv.ReferenceKind)
	}
	// right sum of x² overshoots by 1/(2n) + 1/(6n²)
	if got, want := conv.Points[0].Error, 0.05+1.0/600; math.Abs(got-want) > 1e-12 {
		t.Errorf("error at n=10 = %v, want %v", got, want)
	}
}

func TestConvergenceSequenceErrors(t *testing.T) {
	if _, err := ConvergenceSequence(preset("square"), 0, 1, Simpson, []int{2, 5}, nil); !smerror.IsDomain(err) {
		t.Errorf("odd n error = %v", err)
	}
	if _, err := ConvergenceSequence(preset("reciprocal"), -1, 1, Midpoint, []int{2}, nil); !smerror.IsUndefined(err) {
		t.Errorf("pole error = %v", err)
	}
}

func TestReferenceIntegral(t *testing.T) {
	tests := []struct {
		id   string
		a, b float64
		want float64
	}{
		{"square", 0, 1, 1.0 / 3.0},
		{"exp", 0, 1, math.E - 1},
		{"gaussian", 0, 1, math.Sqrt(math.Pi) / 2 * math.Erf(1)},
		{"square", 1, 0, -1.0 / 3.0},
		{"cos", 2, 2, 0},
	}
	for _, tt := range tests {
		got, err := ReferenceIntegral(preset(tt.id), tt.a, tt.b)
		if err != nil {
			t.Errorf("ReferenceIntegral(%s) error = %v", tt.id, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ReferenceIntegral(%s, %v, %v) = %v, want %v", tt.id, tt.a, tt.b, got, tt.want)
		}
	}
}

func ExampleComputeRiemannSum() {
	x := catalog.Func(func(x float64) float64 { return x })
	sum, _ := ComputeRiemannSum(x, 0, 2, 4, Left)
	fmt.Println(sum.Value)
	// Output: 1.5
}

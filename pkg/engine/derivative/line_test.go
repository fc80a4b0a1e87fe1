package derivative

import (
	"math"
	"testing"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

func TestTangentLine(t *testing.T) {
	line, err := TangentLine(preset("square"), 3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(line.Slope-6) > 1e-8 || line.Y0 != 9 {
		t.Errorf("TangentLine() = %+v", line)
	}
	if math.Abs(line.Intercept-(-9)) > 1e-7 {
		t.Errorf("Intercept = %v, want -9", line.Intercept)
	}
	if math.Abs(line.At(3)-9) > 1e-12 {
		t.Errorf("At(3) = %v, want 9", line.At(3))
	}
}

func TestTangentLineUndefined(t *testing.T) {
	if _, err := TangentLine(preset("removable"), 1); !smerror.IsUndefined(err) {
		t.Errorf("TangentLine(removable, 1) error = %v, want UNDEFINED_RESULT", err)
	}
}

func TestSecantLine(t *testing.T) {
	line, err := SecantLine(preset("square"), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := Line{X0: 1, Y0: 1, X1: 2, Y1: 4, Slope: 3, Intercept: -2}
	if line != want {
		t.Errorf("SecantLine() = %+v, want %+v", line, want)
	}

	if _, err := SecantLine(preset("square"), 1, 0); !smerror.IsDomain(err) {
		t.Errorf("h=0 error = %v, want DOMAIN_ERROR", err)
	}
	if _, err := SecantLine(preset("reciprocal"), -1, 1); !smerror.IsUndefined(err) {
		t.Errorf("secant into a pole error = %v, want UNDEFINED_RESULT", err)
	}
}

func TestSecantSequenceApproachesTangent(t *testing.T) {
	seq, err := SecantSequence(preset("square"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != len(DefaultSecantSteps) {
		t.Fatalf("len = %d, want %d", len(seq), len(DefaultSecantSteps))
	}
	for i := 1; i < len(seq); i++ {
		if seq[i].Error >= seq[i-1].Error {
			t.Errorf("error did not shrink at h=%v: %v >= %v", seq[i].H, seq[i].Error, seq[i-1].Error)
		}
	}
	// slope of x² secant is 2 + h
	if last := seq[len(seq)-1]; math.Abs(last.Line.Slope-2.001) > 1e-9 {
		t.Errorf("last secant slope = %v, want 2.001", last.Line.Slope)
	}
}

func TestSecantSequenceSkipsUndefined(t *testing.T) {
	// 1/x at -0.5: h = 0.5 lands on the pole
	seq, err := SecantSequenceWith(preset("reciprocal"), -0.5, []float64{0.5, 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 1 || seq[0].H != 0.1 {
		t.Errorf("SecantSequenceWith() = %+v, want only h=0.1", seq)
	}
}

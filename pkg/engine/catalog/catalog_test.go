package catalog

import (
	"math"
	"testing"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

func TestNewContainsPresets(t *testing.T) {
	c := New()
	want := []string{
		"square", "cube", "linear", "sin", "cos", "exp", "ln", "reciprocal",
		"inverse-square", "sqrt", "abs", "cubic", "quartic", "gaussian",
		"removable", "sinc", "step", "sin-inverse", "floor",
	}
	for _, id := range want {
		if _, err := c.Get(id); err != nil {
			t.Errorf("Get(%q) error = %v", id, err)
		}
	}
	if c.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(want))
	}
}

func TestIDsSorted(t *testing.T) {
	ids := New().IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("IDs() not sorted at %d: %q >= %q", i, ids[i-1], ids[i])
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := New().Get("tan")
	if !smerror.HasCode(err, smerror.CodeNotFound) {
		t.Errorf("Get(tan) code = %v, want NOT_FOUND", smerror.GetCode(err))
	}
}

func TestMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet(unknown) did not panic")
		}
	}()
	New().MustGet("unknown")
}

func TestRegister(t *testing.T) {
	c := Empty()
	fn := &Function{ID: "half", Eval: func(x float64) float64 { return x / 2 }}

	if err := c.Register(fn); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		fn   *Function
	}{
		{"duplicate", fn},
		{"nil", nil},
		{"empty id", &Function{Eval: math.Sin}},
		{"no eval", &Function{ID: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Register(tt.fn); !smerror.IsInvalidInput(err) {
				t.Errorf("Register() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestByTag(t *testing.T) {
	c := New()
	for _, fn := range c.ByTag(TagIntegrals) {
		if !fn.HasTag(TagIntegrals) {
			t.Errorf("%s returned for integrals without the tag", fn.ID)
		}
	}
	if len(c.ByTag(TagContinuity)) == 0 {
		t.Error("ByTag(continuity) is empty")
	}
}

func TestEvaluateDomain(t *testing.T) {
	c := New()

	tests := []struct {
		id      string
		x       float64
		defined bool
		want    float64
	}{
		{"square", 3, true, 9},
		{"ln", 0, false, 0},
		{"ln", -1, false, 0},
		{"ln", 1, true, 0},
		{"reciprocal", 0, false, 0},
		{"removable", 1, false, 0},
		{"removable", 3, true, 4},
		{"sqrt", -4, false, 0},
		{"sinc", 0, false, 0},
		{"step", 0, true, 1},
		{"step", -0.1, true, 0},
		{"floor", 1.7, true, 1},
	}
	for _, tt := range tests {
		fn := c.MustGet(tt.id)
		y, ok := SafeEval(fn, tt.x)
		if ok != tt.defined {
			t.Errorf("%s(%v) defined = %v, want %v", tt.id, tt.x, ok, tt.defined)
			continue
		}
		if ok && math.Abs(y-tt.want) > 1e-12 {
			t.Errorf("%s(%v) = %v, want %v", tt.id, tt.x, y, tt.want)
		}
		if !tt.defined && !math.IsNaN(fn.Evaluate(tt.x)) {
			t.Errorf("%s.Evaluate(%v) should be NaN outside the domain", tt.id, tt.x)
		}
	}
}

func TestSafeEvalRecoversPanics(t *testing.T) {
	panicky := Func(func(x float64) float64 {
		if x > 0 {
			panic("boom")
		}
		return x
	})
	if _, ok := SafeEval(panicky, 1); ok {
		t.Error("SafeEval should report a panicking function as undefined")
	}
	if y, ok := SafeEval(panicky, -2); !ok || y != -2 {
		t.Errorf("SafeEval(-2) = %v, %v", y, ok)
	}
	if !math.IsNaN(panicky.Evaluate(1)) {
		t.Error("Func.Evaluate should turn panics into NaN")
	}
}

func TestExactDerivativeMatchesDifferenceQuotient(t *testing.T) {
	const h = 1e-6
	for _, fn := range New().All() {
		if !fn.HasDerivative() {
			continue
		}
		for _, x := range []float64{-1.3, 0.4, 2.1} {
			d, ok := fn.ExactDerivative(x)
			if !ok {
				continue
			}
			l, okL := SafeEval(fn, x-h)
			r, okR := SafeEval(fn, x+h)
			if !okL || !okR {
				continue
			}
			approx := (r - l) / (2 * h)
			if math.Abs(approx-d) > 1e-4*math.Max(1, math.Abs(d)) {
				t.Errorf("%s'(%v) = %v, difference quotient %v", fn.ID, x, d, approx)
			}
		}
	}
}

func TestExactIntegral(t *testing.T) {
	c := New()

	tests := []struct {
		id   string
		a, b float64
		want float64
		ok   bool
	}{
		{"square", 0, 1, 1.0 / 3.0, true},
		{"linear", 0, 2, 6, true},
		{"sin", 0, math.Pi, 2, true},
		{"step", -1, 2, 2, true},
		{"removable", 0, 2, 4, true},
		{"ln", 0, 1, 0, false},
		{"reciprocal", 1, 2, 0, false},
		{"sqrt", 0, 4, 16.0 / 3.0, true},
	}
	for _, tt := range tests {
		got, ok := c.MustGet(tt.id).ExactIntegral(tt.a, tt.b)
		if ok != tt.ok {
			t.Errorf("%s ExactIntegral(%v, %v) ok = %v, want %v", tt.id, tt.a, tt.b, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s ExactIntegral(%v, %v) = %v, want %v", tt.id, tt.a, tt.b, got, tt.want)
		}
	}
}

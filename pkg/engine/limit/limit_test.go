package limit

import (
	"math"
	"testing"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

var presets = catalog.New()

func preset(id string) *catalog.Function { return presets.MustGet(id) }

func TestEvaluateLimitSquareAtTwo(t *testing.T) {
	// x² with a hole at 2 has the same limit as x²
	holed := catalog.Func(func(x float64) float64 {
		if x == 2 {
			return math.NaN()
		}
		return x * x
	})

	for name, fn := range map[string]catalog.Evaluable{"square": preset("square"), "holed": holed} {
		t.Run(name, func(t *testing.T) {
			res, err := EvaluateLimit(fn, 2, Both)
			if err != nil {
				t.Fatalf("EvaluateLimit() error = %v", err)
			}
			if !res.Exists || math.Abs(res.Value-4) > 1e-6 {
				t.Errorf("EvaluateLimit() = %v (exists %v), want 4", res.Value, res.Exists)
			}
		})
	}
}

func TestEvaluateLimitRemovable(t *testing.T) {
	res, err := EvaluateLimit(preset("removable"), 1, Both)
	if err != nil {
		t.Fatalf("EvaluateLimit() error = %v", err)
	}
	if !res.Exists || math.Abs(res.Value-2) > 1e-6 {
		t.Errorf("EvaluateLimit() = %v (exists %v), want 2", res.Value, res.Exists)
	}
}

func TestEvaluateLimitBehaviors(t *testing.T) {
	tests := []struct {
		id        string
		point     float64
		direction Direction
		want      Behavior
		value     float64
	}{
		{"sinc", 0, Both, Converges, 1},
		{"reciprocal", 0, Right, DivergesPositive, 0},
		{"reciprocal", 0, Left, DivergesNegative, 0},
		{"reciprocal", 0, Both, SidesDisagree, 0},
		{"inverse-square", 0, Both, DivergesPositive, 0},
		{"ln", 0, Right, DivergesNegative, 0},
		{"ln", 0, Left, Undefined, 0},
		{"sin-inverse", 0, Both, Oscillates, 0},
		{"step", 0, Left, Converges, 0},
		{"step", 0, Right, Converges, 1},
		{"step", 0, Both, SidesDisagree, 0},
		{"sqrt", 0, Right, Converges, 0},
		{"abs", 0, Both, Converges, 0},
		{"floor", 0, Left, Converges, -1},
	}
	for _, tt := range tests {
		t.Run(tt.id+"/"+string(tt.direction), func(t *testing.T) {
			res, err := EvaluateLimit(preset(tt.id), tt.point, tt.direction)
			if err != nil {
				t.Fatalf("EvaluateLimit() error = %v", err)
			}
			if res.Behavior != tt.want {
				t.Fatalf("Behavior = %v, want %v", res.Behavior, tt.want)
			}
			if res.Exists != (tt.want == Converges) {
				t.Errorf("Exists = %v", res.Exists)
			}
			if math.Abs(res.Value-tt.value) > 1e-6 {
				t.Errorf("Value = %v, want %v", res.Value, tt.value)
			}
			if math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
				t.Errorf("Value leaked a non-finite number: %v", res.Value)
			}
		})
	}
}

func TestEvaluateLimitSamples(t *testing.T) {
	res, err := EvaluateLimit(preset("reciprocal"), 0, Both)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Left.Samples) != 12 || len(res.Right.Samples) != 12 {
		t.Fatalf("sample counts = %d/%d, want 12", len(res.Left.Samples), len(res.Right.Samples))
	}
	first := res.Left.Samples[0]
	if first.X != -0.5 || first.Y != -2 || !first.Defined {
		t.Errorf("first left sample = %+v", first)
	}

	ln, _ := EvaluateLimit(preset("ln"), 0, Left)
	for _, s := range ln.Left.Samples {
		if s.Defined || s.Y != 0 {
			t.Errorf("ln sample at %v = %+v, want undefined zero", s.X, s)
		}
	}
}

func TestEvaluateLimitErrors(t *testing.T) {
	sq := preset("square")

	if _, err := EvaluateLimit(sq, 0, Direction("up")); !smerror.IsInvalidInput(err) {
		t.Errorf("bad direction error = %v, want INVALID_INPUT", err)
	}
	if _, err := EvaluateLimit(sq, math.Inf(1), Both); !smerror.IsDomain(err) {
		t.Errorf("infinite point error = %v, want DOMAIN_ERROR", err)
	}
	if _, err := EvaluateLimit(nil, 0, Both); !smerror.IsInvalidInput(err) {
		t.Errorf("nil function error = %v, want INVALID_INPUT", err)
	}
	_, err := EvaluateLimitWith(sq, 0, Both, Options{Offsets: []float64{0.1, 0.2}})
	if !smerror.IsInvalidInput(err) {
		t.Errorf("increasing offsets error = %v, want INVALID_INPUT", err)
	}
	_, err = EvaluateLimitWith(sq, 0, Both, Options{Offsets: []float64{0.1}})
	if !smerror.IsInvalidInput(err) {
		t.Errorf("single offset error = %v, want INVALID_INPUT", err)
	}
}

func TestEvaluateLimitWithCustomOffsets(t *testing.T) {
	opts := Options{Offsets: []float64{0.1, 0.01, 0.001, 1e-4, 1e-5, 1e-6}}
	res, err := EvaluateLimitWith(preset("exp"), 0, Both, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Exists || math.Abs(res.Value-1) > 1e-5 {
		t.Errorf("limit of exp at 0 = %v", res.Value)
	}
	if len(res.Right.Samples) != len(opts.Offsets) {
		t.Errorf("got %d samples, want %d", len(res.Right.Samples), len(opts.Offsets))
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", Both, false},
		{"both", Both, false},
		{"left", Left, false},
		{"right", Right, false},
		{"sideways", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestEvaluateLimitIdempotent(t *testing.T) {
	a, _ := EvaluateLimit(preset("sinc"), 0, Both)
	b, _ := EvaluateLimit(preset("sinc"), 0, Both)
	if math.Float64bits(a.Value) != math.Float64bits(b.Value) {
		t.Errorf("repeated limits differ: %v vs %v", a.Value, b.Value)
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		res  Result
		want string
	}{
		{Result{Behavior: Converges, Value: 2, Exists: true}, "2"},
		{Result{Behavior: DivergesPositive}, "+∞"},
		{Result{Behavior: DivergesNegative}, "−∞"},
		{Result{Behavior: Oscillates}, "does not exist (oscillates)"},
	}
	for _, tt := range tests {
		if got := tt.res.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func BenchmarkEvaluateLimit(b *testing.B) {
	fn := preset("sinc")
	for i := 0; i < b.N; i++ {
		_, _ = EvaluateLimit(fn, 0, Both)
	}
}

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	fconfig "github.com/Cal-ly/SnakeMath-sub002/foundation/core/config"
	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	s := Default()

	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if s.Limit.AbsTol != mathx.LimitAbsTol || s.Limit.RelTol != mathx.LimitRelTol {
		t.Errorf("limit tolerances = %v, %v", s.Limit.AbsTol, s.Limit.RelTol)
	}
	if s.Derivative.Step != mathx.DefaultStep || s.Derivative.Method != "central" {
		t.Errorf("derivative = %+v", s.Derivative)
	}
	if len(s.Limit.Offsets) != len(mathx.LimitOffsets()) {
		t.Errorf("offsets = %v", s.Limit.Offsets)
	}
}

func TestParse_TOML(t *testing.T) {
	content := `
[general]
seed = 7
output = "json"

[limit]
abs_tol = 1e-5
offsets = [0.1, 0.01, 0.001]

[derivative]
method = "forward"

[cache]
ttl = "30s"
max_entries = 16
`
	s, err := Parse(content, fconfig.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if s.General.Seed != 7 || s.General.Output != "json" {
		t.Errorf("general = %+v", s.General)
	}
	if s.Limit.AbsTol != 1e-5 {
		t.Errorf("abs_tol = %v, want 1e-5", s.Limit.AbsTol)
	}
	if s.Limit.RelTol != mathx.LimitRelTol {
		t.Errorf("rel_tol = %v, want default %v", s.Limit.RelTol, mathx.LimitRelTol)
	}
	if len(s.Limit.Offsets) != 3 || s.Limit.Offsets[2] != 0.001 {
		t.Errorf("offsets = %v", s.Limit.Offsets)
	}
	if s.Derivative.Method != "forward" {
		t.Errorf("method = %v, want forward", s.Derivative.Method)
	}
	if s.Cache.TTL.Duration != 30*time.Second || s.Cache.MaxEntries != 16 {
		t.Errorf("cache = %+v", s.Cache)
	}
}

func TestParse_YAML(t *testing.T) {
	content := `
integral:
  partitions: 40
  method: simpson
inference:
  level: 0.9
`
	s, err := Parse(content, fconfig.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if s.Integral.Partitions != 40 || s.Integral.Method != "simpson" {
		t.Errorf("integral = %+v", s.Integral)
	}
	if s.Inference.Level != 0.9 || s.Inference.Alpha != 0.05 {
		t.Errorf("inference = %+v", s.Inference)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SNAKEMATH_INFERENCE_BOOTSTRAP_RESAMPLES", "250")
	t.Setenv("SNAKEMATH_LOG_LEVEL", "debug")

	s, err := Parse("[inference]\nbootstrap_resamples = 900\n", fconfig.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if s.Inference.BootstrapResamples != 250 {
		t.Errorf("bootstrap_resamples = %d, want env value 250", s.Inference.BootstrapResamples)
	}
	if s.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", s.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"negative tolerance", func(s *Settings) { s.Limit.AbsTol = -1 }, "limit.abs_tol"},
		{"zero step", func(s *Settings) { s.Derivative.Step = 0 }, "derivative.step"},
		{"too many partitions", func(s *Settings) { s.Integral.Partitions = 500 }, "integral.partitions"},
		{"level of one", func(s *Settings) { s.Inference.Level = 1 }, "inference.level"},
		{"increasing offsets", func(s *Settings) { s.Limit.Offsets = []float64{0.1, 0.2} }, "limit.offsets"},
		{"unknown derivative method", func(s *Settings) { s.Derivative.Method = "spline" }, "derivative.method"},
		{"unknown integral method", func(s *Settings) { s.Integral.Method = "gauss" }, "integral.method"},
		{"unknown output", func(s *Settings) { s.General.Output = "xml" }, "general.output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			if !smerror.HasCode(err, smerror.CodeInvalidConfig) {
				t.Fatalf("Validate() = %v, want INVALID_CONFIG", err)
			}
			var smErr *smerror.Error
			if !errors.As(err, &smErr) {
				t.Fatalf("error %T is not an engine error", err)
			}
			if field, _ := smErr.Detail("field"); field != tt.field {
				t.Errorf("field = %v, want %v", field, tt.field)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snakemath.toml")
	if err := os.WriteFile(path, []byte("[integral]\npartitions = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Integral.Partitions != 20 {
		t.Errorf("partitions = %d, want 20", s.Integral.Partitions)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !smerror.HasCode(err, smerror.CodeNotFound) {
		t.Errorf("Load() error = %v, want NOT_FOUND", err)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("inference:\n  alpha: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !smerror.HasCode(err, smerror.CodeInvalidConfig) {
		t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[limit]") || !strings.Contains(buf.String(), `ttl = "10m0s"`) {
		t.Errorf("encoded settings missing sections:\n%s", buf.String())
	}

	s, err := Parse(buf.String(), fconfig.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if s.Cache.TTL.Duration != 10*time.Minute || s.General.Seed != 42 {
		t.Errorf("round trip settings = %+v", s)
	}
}

// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     config
// Description: Typed engine settings loaded from TOML or YAML with
//              SNAKEMATH_ environment overrides
// Created:     2026-03-13
// License:     MIT
// ============================================================================

package config

import (
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	fconfig "github.com/Cal-ly/SnakeMath-sub002/foundation/core/config"
	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/core/validation"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/derivative"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/integral"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SNAKEMATH"

// Settings holds the complete engine configuration
type Settings struct {
	General      GeneralConfig      `toml:"general" yaml:"general" json:"general"`
	Log          LogConfig          `toml:"log" yaml:"log" json:"log"`
	Limit        LimitConfig        `toml:"limit" yaml:"limit" json:"limit"`
	Derivative   DerivativeConfig   `toml:"derivative" yaml:"derivative" json:"derivative"`
	Integral     IntegralConfig     `toml:"integral" yaml:"integral" json:"integral"`
	Distribution DistributionConfig `toml:"distribution" yaml:"distribution" json:"distribution"`
	Inference    InferenceConfig    `toml:"inference" yaml:"inference" json:"inference"`
	Cache        CacheConfig        `toml:"cache" yaml:"cache" json:"cache"`
}

// GeneralConfig holds settings shared by every command
type GeneralConfig struct {
	Seed   uint64 `toml:"seed" yaml:"seed" json:"seed"`
	Output string `toml:"output" yaml:"output" json:"output"`
}

// LogConfig selects the host logger
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" json:"level"`
	Format string `toml:"format" yaml:"format" json:"format"`
}

// LimitConfig holds the numerical limit tolerances and approach offsets
type LimitConfig struct {
	AbsTol  float64   `toml:"abs_tol" yaml:"abs_tol" json:"abs_tol"`
	RelTol  float64   `toml:"rel_tol" yaml:"rel_tol" json:"rel_tol"`
	Offsets []float64 `toml:"offsets" yaml:"offsets" json:"offsets"`
}

// DerivativeConfig holds difference-quotient defaults
type DerivativeConfig struct {
	Step       float64 `toml:"step" yaml:"step" json:"step"`
	SecondStep float64 `toml:"second_step" yaml:"second_step" json:"second_step"`
	Method     string  `toml:"method" yaml:"method" json:"method"`
}

// IntegralConfig holds Riemann sum defaults
type IntegralConfig struct {
	Partitions int    `toml:"partitions" yaml:"partitions" json:"partitions"`
	Method     string `toml:"method" yaml:"method" json:"method"`
}

// DistributionConfig holds central limit demo defaults
type DistributionConfig struct {
	CLTRepetitions int `toml:"clt_repetitions" yaml:"clt_repetitions" json:"clt_repetitions"`
	CLTSampleSize  int `toml:"clt_sample_size" yaml:"clt_sample_size" json:"clt_sample_size"`
	CLTBins        int `toml:"clt_bins" yaml:"clt_bins" json:"clt_bins"`
}

// InferenceConfig holds interval and test defaults
type InferenceConfig struct {
	BootstrapResamples int     `toml:"bootstrap_resamples" yaml:"bootstrap_resamples" json:"bootstrap_resamples"`
	Level              float64 `toml:"level" yaml:"level" json:"level"`
	Alpha              float64 `toml:"alpha" yaml:"alpha" json:"alpha"`
}

// CacheConfig controls facade memoization
type CacheConfig struct {
	Enabled    bool     `toml:"enabled" yaml:"enabled" json:"enabled"`
	MaxEntries int      `toml:"max_entries" yaml:"max_entries" json:"max_entries"`
	TTL        Duration `toml:"ttl" yaml:"ttl" json:"ttl"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		General: GeneralConfig{Seed: 42, Output: "text"},
		Log:     LogConfig{Level: "warn", Format: "console"},
		Limit: LimitConfig{
			AbsTol:  mathx.LimitAbsTol,
			RelTol:  mathx.LimitRelTol,
			Offsets: mathx.LimitOffsets(),
		},
		Derivative: DerivativeConfig{
			Step:       mathx.DefaultStep,
			SecondStep: derivative.DefaultSecondStep,
			Method:     string(derivative.Central),
		},
		Integral: IntegralConfig{Partitions: 10, Method: string(integral.Midpoint)},
		Distribution: DistributionConfig{
			CLTRepetitions: 1000,
			CLTSampleSize:  30,
			CLTBins:        30,
		},
		Inference: InferenceConfig{BootstrapResamples: 1000, Level: 0.95, Alpha: 0.05},
		Cache:     CacheConfig{Enabled: true, MaxEntries: 4096, TTL: Duration{10 * time.Minute}},
	}
}

// Load reads settings from path, or discovers snakemath.{toml,yaml} in the
// usual places when path is empty. Environment overrides apply either way.
func Load(path string) (*Settings, error) {
	var (
		raw *fconfig.Config
		err error
	)
	if path == "" {
		raw, err = fconfig.Discover(fconfig.DefaultDiscoveryOptions())
	} else {
		raw, err = fconfig.LoadWithOptions(os.ExpandEnv(path), fconfig.LoadOptions{
			Format:    fconfig.FormatAuto,
			EnvPrefix: EnvPrefix,
		})
	}
	if err != nil {
		return nil, err
	}
	return FromConfig(raw)
}

// Parse reads settings from TOML or YAML content
func Parse(content string, format fconfig.Format) (*Settings, error) {
	raw, err := fconfig.LoadFromString(content, format)
	if err != nil {
		return nil, err
	}
	return FromConfig(raw.WithEnvPrefix(EnvPrefix))
}

// FromConfig maps a generic configuration onto Settings, filling every
// missing key from Default, and validates the result.
func FromConfig(c *fconfig.Config) (*Settings, error) {
	d := Default()
	s := &Settings{
		General: GeneralConfig{
			Seed:   c.GetUint64("general.seed", d.General.Seed),
			Output: c.GetString("general.output", d.General.Output),
		},
		Log: LogConfig{
			Level:  c.GetString("log.level", d.Log.Level),
			Format: c.GetString("log.format", d.Log.Format),
		},
		Limit: LimitConfig{
			AbsTol:  c.GetFloat("limit.abs_tol", d.Limit.AbsTol),
			RelTol:  c.GetFloat("limit.rel_tol", d.Limit.RelTol),
			Offsets: c.GetFloatSlice("limit.offsets", d.Limit.Offsets),
		},
		Derivative: DerivativeConfig{
			Step:       c.GetFloat("derivative.step", d.Derivative.Step),
			SecondStep: c.GetFloat("derivative.second_step", d.Derivative.SecondStep),
			Method:     c.GetString("derivative.method", d.Derivative.Method),
		},
		Integral: IntegralConfig{
			Partitions: c.GetInt("integral.partitions", d.Integral.Partitions),
			Method:     c.GetString("integral.method", d.Integral.Method),
		},
		Distribution: DistributionConfig{
			CLTRepetitions: c.GetInt("distribution.clt_repetitions", d.Distribution.CLTRepetitions),
			CLTSampleSize:  c.GetInt("distribution.clt_sample_size", d.Distribution.CLTSampleSize),
			CLTBins:        c.GetInt("distribution.clt_bins", d.Distribution.CLTBins),
		},
		Inference: InferenceConfig{
			BootstrapResamples: c.GetInt("inference.bootstrap_resamples", d.Inference.BootstrapResamples),
			Level:              c.GetFloat("inference.level", d.Inference.Level),
			Alpha:              c.GetFloat("inference.alpha", d.Inference.Alpha),
		},
		Cache: CacheConfig{
			Enabled:    c.GetBool("cache.enabled", d.Cache.Enabled),
			MaxEntries: c.GetInt("cache.max_entries", d.Cache.MaxEntries),
			TTL:        Duration{c.GetDuration("cache.ttl", d.Cache.TTL.Duration)},
		},
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func decreasingOffsets(offsets []float64) bool {
	if len(offsets) < 2 {
		return false
	}
	for i, o := range offsets {
		if !(o > 0) || (i > 0 && o >= offsets[i-1]) {
			return false
		}
	}
	return true
}

// Validate checks every setting and returns an INVALID_CONFIG error
// naming the first offending field.
func (s *Settings) Validate() error {
	const op = "config.Validate"
	result := validation.NewParamCheck(op).
		Field("limit.abs_tol", s.Limit.AbsTol, validation.Finite(), validation.Positive()).
		Field("limit.rel_tol", s.Limit.RelTol, validation.Finite(), validation.Positive()).
		Field("derivative.step", s.Derivative.Step, validation.Finite(), validation.Positive()).
		Field("derivative.second_step", s.Derivative.SecondStep, validation.Finite(), validation.Positive()).
		Field("integral.partitions", s.Integral.Partitions, validation.Range(1, integral.MaxPartitions)).
		Field("distribution.clt_repetitions", s.Distribution.CLTRepetitions, validation.Range(2, 5000)).
		Field("distribution.clt_sample_size", s.Distribution.CLTSampleSize, validation.Range(1, 1000)).
		Field("distribution.clt_bins", s.Distribution.CLTBins, validation.Range(1, 100)).
		Field("inference.bootstrap_resamples", s.Inference.BootstrapResamples, validation.Range(1, 10000)).
		Field("inference.level", s.Inference.Level, validation.OpenUnit()).
		Field("inference.alpha", s.Inference.Alpha, validation.OpenUnit()).
		Field("cache.max_entries", s.Cache.MaxEntries, validation.AtLeast(1)).
		Result()
	if err := result.ToErrorWithCode(smerror.CodeInvalidConfig, op); err != nil {
		return err
	}

	if !decreasingOffsets(s.Limit.Offsets) {
		return smerror.New("limit offsets must be positive and strictly decreasing, at least two").
			WithCode(smerror.CodeInvalidConfig).
			WithOperation(op).
			WithDetail("field", "limit.offsets")
	}
	if _, err := derivative.ParseMethod(s.Derivative.Method); err != nil {
		return invalid(op, "derivative.method", s.Derivative.Method)
	}
	if _, err := integral.ParseMethod(s.Integral.Method); err != nil {
		return invalid(op, "integral.method", s.Integral.Method)
	}
	switch s.General.Output {
	case "text", "json", "yaml":
	default:
		return invalid(op, "general.output", s.General.Output)
	}
	return nil
}

func invalid(op, field, value string) error {
	return smerror.New("unknown value for " + field).
		WithCode(smerror.CodeInvalidConfig).
		WithOperation(op).
		WithDetail("field", field).
		WithDetail("value", value)
}

// Encode writes the settings as TOML
func (s *Settings) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return smerror.Wrap(err, "encode settings").
			WithCode(smerror.CodeConfigError).
			WithOperation("config.Encode")
	}
	return nil
}

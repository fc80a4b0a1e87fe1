// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     engine
// Description: Facade over the numerical engines: resolves catalog IDs,
//              applies configured defaults and memoizes results
// Created:     2026-03-15
// License:     MIT
// ============================================================================

package engine

import (
	"math/rand/v2"
	"time"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	smlog "github.com/Cal-ly/SnakeMath-sub002/foundation/core/log"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/core/cache"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/core/config"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

// Engine is the single host-side entry point to the engines. The engines
// themselves stay pure; Engine adds configuration defaults, memoization,
// logging and metrics. Memoized results are shared between callers and
// must be treated as read-only.
type Engine struct {
	settings *config.Settings
	catalog  *catalog.Catalog
	logger   *smlog.Logger
	cache    *cache.Cache
	metrics  *Metrics
}

// New builds an Engine. Nil arguments fall back to the default settings,
// the preset catalog and a discarding logger.
func New(settings *config.Settings, cat *catalog.Catalog, logger *smlog.Logger) (*Engine, error) {
	if settings == nil {
		settings = config.Default()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if cat == nil {
		cat = catalog.New()
	}
	if logger == nil {
		logger = smlog.Discard()
	}

	e := &Engine{
		settings: settings,
		catalog:  cat,
		logger:   logger.WithName("engine"),
		metrics:  NewMetrics(),
	}
	if settings.Cache.Enabled {
		e.cache = cache.New(cache.Config{
			MaxItems: settings.Cache.MaxEntries,
			TTL:      settings.Cache.TTL.Duration,
		})
	}
	return e, nil
}

// MustNew is New that panics on invalid settings
func MustNew(settings *config.Settings, cat *catalog.Catalog, logger *smlog.Logger) *Engine {
	e, err := New(settings, cat, logger)
	if err != nil {
		panic(err)
	}
	return e
}

// Close releases the cache
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// Settings returns the effective settings
func (e *Engine) Settings() *config.Settings { return e.settings }

// Catalog returns the function catalog
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Metrics returns the facade metrics
func (e *Engine) Metrics() *Metrics { return e.metrics }

// CacheStats returns memoization counters; zero when caching is off
func (e *Engine) CacheStats() cache.Stats {
	if e.cache == nil {
		return cache.Stats{}
	}
	return e.cache.Stats()
}

// Function resolves a catalog ID
func (e *Engine) Function(id string) (*catalog.Function, error) {
	fn, err := e.catalog.Get(id)
	if err != nil {
		e.fail("catalog.Get", err)
		return nil, err
	}
	return fn, nil
}

// Rand returns a generator for seed, or for the configured seed when seed is 0
func (e *Engine) Rand(seed uint64) *rand.Rand {
	return mathx.NewRand(e.seed(seed))
}

func (e *Engine) seed(seed uint64) uint64 {
	if seed == 0 {
		return e.settings.General.Seed
	}
	return seed
}

func (e *Engine) fail(op string, err error) {
	e.metrics.observeError(op, smerror.GetCode(err))
	e.logger.LogError(err)
}

// memo runs compute under the cache key built from op and parts. Errors are
// counted and logged but never cached.
func memo[T any](e *Engine, op string, compute func() (T, error), parts ...interface{}) (T, error) {
	timer := e.logger.StartTimer(op).WithLevel(smlog.LevelTrace)
	start := time.Now()
	defer func() { e.metrics.observeDuration(op, time.Since(start)) }()
	e.metrics.observeCall(op)

	if e.cache == nil {
		v, err := compute()
		if err != nil {
			timer.StopWithError(err)
			e.fail(op, err)
			return v, err
		}
		timer.Stop()
		return v, nil
	}

	key := cache.Key(op, parts...)
	raw, hit, err := e.cache.GetOrSet(key, func() (interface{}, error) {
		return compute()
	})
	if err != nil {
		timer.StopWithError(err)
		e.fail(op, err)
		var zero T
		return zero, err
	}
	e.metrics.observeCache(op, hit)
	timer.WithField("cache_hit", hit).Stop()
	return raw.(T), nil
}

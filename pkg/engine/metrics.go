package engine

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

const namespace = "snakemath"

// Metrics holds the facade's Prometheus collectors in a private registry
type Metrics struct {
	registry *prometheus.Registry

	calls       *prometheus.CounterVec
	errors      *prometheus.CounterVec
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Engine operations requested through the facade.",
		}, []string{"operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Engine operations that returned an error, by error code.",
		}, []string{"operation", "code"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Results served from the memoization cache.",
		}, []string{"operation"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Results computed because no cached value existed.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall time of facade operations, cache lookups included.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"operation"}),
	}
	m.registry.MustRegister(m.calls, m.errors, m.cacheHits, m.cacheMisses, m.duration)
	return m
}

func (m *Metrics) observeCall(op string) {
	m.calls.WithLabelValues(op).Inc()
}

func (m *Metrics) observeError(op string, code smerror.Code) {
	m.errors.WithLabelValues(op, code.String()).Inc()
}

func (m *Metrics) observeCache(op string, hit bool) {
	if hit {
		m.cacheHits.WithLabelValues(op).Inc()
		return
	}
	m.cacheMisses.WithLabelValues(op).Inc()
}

func (m *Metrics) observeDuration(op string, d time.Duration) {
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}

// Registry exposes the private registry, e.g. for an HTTP handler
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Gather returns the current metric families
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}

// WriteText writes every metric family in the Prometheus text format
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Gather()
	if err != nil {
		return smerror.Wrap(err, "gather metrics").WithCode(smerror.CodeInternal)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return smerror.Wrap(err, "write metrics").WithCode(smerror.CodeInternal)
		}
	}
	return nil
}

// Counter returns the summed value of a counter family, filtered by label
// values when given as name/value pairs. Missing families read as 0.
func (m *Metrics) Counter(name string, labels ...string) float64 {
	families, err := m.Gather()
	if err != nil {
		return 0
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name || mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if matchLabels(metric.GetLabel(), labels) {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	return total
}

func matchLabels(pairs []*dto.LabelPair, want []string) bool {
	for i := 0; i+1 < len(want); i += 2 {
		found := false
		for _, p := range pairs {
			if p.GetName() == want[i] && p.GetValue() == want[i+1] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

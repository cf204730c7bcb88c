package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors for a store.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "treestore").
	Namespace string

	// Subsystem is the metrics subsystem (default: "store").
	Subsystem string

	// ConstLabels are constant labels added to all metrics. Use these to
	// distinguish stores when several register against one registry.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for flush duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures NewMetrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the flush duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "treestore",
		Subsystem: "store",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for one store. A nil *Metrics is
// valid and records nothing, so stores constructed without WithMetrics pay no
// observation cost.
type Metrics struct {
	flushesScheduled  prometheus.Counter
	flushesCoalesced  prometheus.Counter
	flushesTotal      prometheus.Counter
	listenersNotified prometheus.Counter
	listenerPanics    prometheus.Counter
	flushDuration     prometheus.Histogram
}

// NewMetrics creates and registers the store collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		flushesScheduled: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "flushes_scheduled_total",
			Help:        "Flush windows opened (first flush request of a window).",
			ConstLabels: cfg.ConstLabels,
		}),
		flushesCoalesced: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "flush_requests_coalesced_total",
			Help:        "Flush requests absorbed into an already-pending window.",
			ConstLabels: cfg.ConstLabels,
		}),
		flushesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "flushes_total",
			Help:        "Flush passes executed.",
			ConstLabels: cfg.ConstLabels,
		}),
		listenersNotified: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "listeners_notified_total",
			Help:        "Listener invocations across all flushes.",
			ConstLabels: cfg.ConstLabels,
		}),
		listenerPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "listener_panics_total",
			Help:        "Listener invocations that panicked and were isolated.",
			ConstLabels: cfg.ConstLabels,
		}),
		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "flush_duration_seconds",
			Help:        "Duration of flush passes.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
	}
}

func (m *Metrics) flushScheduled() {
	if m == nil {
		return
	}
	m.flushesScheduled.Inc()
}

func (m *Metrics) flushCoalesced() {
	if m == nil {
		return
	}
	m.flushesCoalesced.Inc()
}

func (m *Metrics) flushDone(listeners int, d time.Duration) {
	if m == nil {
		return
	}
	m.flushesTotal.Inc()
	m.listenersNotified.Add(float64(listeners))
	m.flushDuration.Observe(d.Seconds())
}

func (m *Metrics) listenerPanicked() {
	if m == nil {
		return
	}
	m.listenerPanics.Inc()
}

package recycler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the pool's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vango").
	Namespace string

	// Subsystem is the metrics subsystem (default: "recycler").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the pool's Prometheus metrics.
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

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vango",
		Subsystem: "recycler",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the pool's Prometheus collectors. All series are labelled
// by bucket key.
type Metrics struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	collected *prometheus.CounterVec
	prewarmed *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	idle      *prometheus.GaugeVec
}

// NewMetrics registers the pool collectors.
//
// Metrics collected:
//   - vango_recycler_hits_total: creations served from a bucket
//   - vango_recycler_misses_total: creations delegated to the host
//   - vango_recycler_collected_total: collected nodes filed into a bucket
//   - vango_recycler_prewarmed_total: fresh nodes filed by Prewarm
//   - vango_recycler_dropped_total: nodes discarded because a bucket was full
//   - vango_recycler_idle_nodes: nodes currently waiting in a bucket
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)
	labels := []string{"bucket"}

	return &Metrics{
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "hits_total",
			Help:        "Node creations served from a pool bucket",
			ConstLabels: config.ConstLabels,
		}, labels),

		misses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "misses_total",
			Help:        "Node creations delegated to the host document",
			ConstLabels: config.ConstLabels,
		}, labels),

		collected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "collected_total",
			Help:        "Collected nodes cleaned and filed into a pool bucket",
			ConstLabels: config.ConstLabels,
		}, labels),

		prewarmed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "prewarmed_total",
			Help:        "Fresh nodes created up front and filed into a pool bucket",
			ConstLabels: config.ConstLabels,
		}, labels),

		dropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dropped_total",
			Help:        "Collected nodes discarded because their bucket was full",
			ConstLabels: config.ConstLabels,
		}, labels),

		idle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "idle_nodes",
			Help:        "Nodes waiting in a pool bucket",
			ConstLabels: config.ConstLabels,
		}, labels),
	}
}

// The record methods are nil-safe so an unmetered pool pays one check.

func (m *Metrics) hit(key string) {
	if m != nil {
		m.hits.WithLabelValues(key).Inc()
		m.idle.WithLabelValues(key).Dec()
	}
}

func (m *Metrics) miss(key string) {
	if m != nil {
		m.misses.WithLabelValues(key).Inc()
	}
}

func (m *Metrics) collect(key string) {
	if m != nil {
		m.collected.WithLabelValues(key).Inc()
		m.idle.WithLabelValues(key).Inc()
	}
}

func (m *Metrics) prewarm(key string) {
	if m != nil {
		m.prewarmed.WithLabelValues(key).Inc()
		m.idle.WithLabelValues(key).Inc()
	}
}

func (m *Metrics) drop(key string) {
	if m != nil {
		m.dropped.WithLabelValues(key).Inc()
	}
}

func (m *Metrics) setIdle(key string, n int) {
	if m != nil {
		m.idle.WithLabelValues(key).Set(float64(n))
	}
}

package recycler

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for pool spans.
const defaultTracerName = "vango/recycler"

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics records pool activity on m.
func WithMetrics(m *Metrics) Option {
	return func(p *Pool) {
		p.metrics = m
	}
}

// WithTracer traces CollectContext with tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Pool) {
		p.tracer = tracer
	}
}

// WithTracing traces with a tracer named name from the global provider.
func WithTracing(name string) Option {
	if name == "" {
		name = defaultTracerName
	}
	return WithTracer(otel.Tracer(name))
}

// WithMaxPerBucket caps each bucket at n idle nodes. Collected nodes beyond
// the cap are cleaned and then dropped. Zero means unbounded.
func WithMaxPerBucket(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.maxPerBucket = n
		}
	}
}

package main

import (
	"log/slog"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/recycler/internal/config"
	"github.com/vango-dev/recycler/pkg/dom"
	"github.com/vango-dev/recycler/pkg/recycler"
)

// loadConfig loads recycler.json from dir and installs its logger as the
// slog default.
func loadConfig(dir string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.Log.Logger(os.Stderr)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// poolOptions turns the pool, metrics and tracing sections into pool
// options. A nil registry disables metrics.
func poolOptions(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) []recycler.Option {
	opts := []recycler.Option{
		recycler.WithLogger(logger),
		recycler.WithMaxPerBucket(cfg.Pool.MaxPerBucket),
	}
	if reg != nil {
		opts = append(opts, recycler.WithMetrics(recycler.NewMetrics(
			recycler.WithNamespace(cfg.Metrics.Namespace),
			recycler.WithSubsystem(cfg.Metrics.Subsystem),
			recycler.WithRegistry(reg),
		)))
	}
	if cfg.Tracing.Enabled {
		opts = append(opts, recycler.WithTracing(cfg.Tracing.TracerName))
	}
	return opts
}

// newPool creates a pool over doc and applies the configured prewarm counts.
func newPool(doc dom.Document, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) *recycler.Pool {
	pool := recycler.New(doc, poolOptions(cfg, logger, reg)...)

	tags := make([]string, 0, len(cfg.Pool.Prewarm))
	for tag := range cfg.Pool.Prewarm {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		pool.Prewarm(tag, cfg.Pool.Prewarm[tag])
	}
	return pool
}

package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/recycler/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "recycler.json"

	// DefaultMetricsAddr is the default listen address of `recycler serve`.
	DefaultMetricsAddr = ":9090"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "vango/recycler"
)

// Environment variables that override the file.
const (
	EnvLogLevel    = "RECYCLER_LOG_LEVEL"
	EnvMetricsAddr = "RECYCLER_METRICS_ADDR"
)

// Config represents the complete recycler.json configuration.
type Config struct {
	// Pool contains node pool settings.
	Pool PoolConfig `json:"pool"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing"`

	// Log contains logging settings.
	Log LogConfig `json:"log"`

	// Report contains benchmark report storage settings.
	Report ReportConfig `json:"report"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PoolConfig contains node pool settings.
type PoolConfig struct {
	// MaxPerBucket caps every bucket. Zero means unbounded.
	MaxPerBucket int `json:"maxPerBucket,omitempty"`

	// Prewarm maps tag names to the number of nodes created up front.
	Prewarm map[string]int `json:"prewarm,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Namespace string `json:"namespace,omitempty"`
	Subsystem string `json:"subsystem,omitempty"`

	// Addr is the listen address for /metrics and /stats.
	Addr string `json:"addr,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `json:"enabled,omitempty"`
	TracerName string `json:"tracerName,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// ReportConfig contains benchmark report storage settings.
type ReportConfig struct {
	// Store is file://<dir> or s3://<bucket>/<prefix>. Empty disables
	// report upload.
	Store string `json:"store,omitempty"`

	// Region is the AWS region for s3 stores.
	Region string `json:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Metrics: MetricsConfig{
			Namespace: "vango",
			Subsystem: "recycler",
			Addr:      DefaultMetricsAddr,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads recycler.json from dir. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(dir string) (*Config, error) {
	if !Exists(dir) {
		cfg := New()
		cfg.ApplyEnv()
		return cfg, nil
	}
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E001").WithFile(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E002").
			WithFile(path).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, errors.FromError(err, "E003").WithFile(path)
	}
	return cfg, nil
}

// Exists reports whether dir contains a config file.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E001").Wrap(err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E001").WithFile(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for fields the file left empty.
func (c *Config) applyDefaults() {
	d := New()
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = d.Metrics.Addr
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = d.Tracing.TracerName
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// ApplyEnv applies RECYCLER_* environment overrides.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvMetricsAddr); v != "" {
		c.Metrics.Addr = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Pool.MaxPerBucket < 0 {
		return errors.New("E003").
			WithDetail("pool.maxPerBucket must not be negative")
	}
	for tag, n := range c.Pool.Prewarm {
		if tag == "" || n < 0 {
			return errors.New("E003").
				WithDetail("pool.prewarm entries need a tag name and a non-negative count")
		}
		if c.Pool.MaxPerBucket > 0 && n > c.Pool.MaxPerBucket {
			return errors.New("E003").
				WithDetail("pool.prewarm[" + tag + "] exceeds pool.maxPerBucket")
		}
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E003").
			WithDetail("log.level must be debug, info, warn or error, got " + c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.New("E003").
			WithDetail("log.format must be text or json, got " + c.Log.Format)
	}
	if c.Report.Store != "" &&
		!strings.HasPrefix(c.Report.Store, "file://") &&
		!strings.HasPrefix(c.Report.Store, "s3://") {
		return errors.New("E011").
			WithDetail("report.store must start with file:// or s3://, got " + c.Report.Store)
	}
	return nil
}

// Logger builds a slog.Logger writing to w.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(l.Level)
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/recycler/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Metrics.Addr != DefaultMetricsAddr {
		t.Errorf("Metrics.Addr = %q, want %q", cfg.Metrics.Addr, DefaultMetricsAddr)
	}
	if cfg.Tracing.TracerName != DefaultTracerName {
		t.Errorf("Tracing.TracerName = %q, want %q", cfg.Tracing.TracerName, DefaultTracerName)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// A missing file yields defaults.
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() on empty dir error = %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "pool": {
    "maxPerBucket": 128,
    "prewarm": {"div": 64, "li": 16}
  },
  "metrics": {"addr": "127.0.0.1:9100"},
  "log": {"level": "debug", "format": "json"},
  "report": {"store": "file:///tmp/reports"}
}
`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pool.MaxPerBucket != 128 {
		t.Errorf("Pool.MaxPerBucket = %d, want 128", cfg.Pool.MaxPerBucket)
	}
	if cfg.Pool.Prewarm["div"] != 64 || cfg.Pool.Prewarm["li"] != 16 {
		t.Errorf("Pool.Prewarm = %v", cfg.Pool.Prewarm)
	}
	if cfg.Metrics.Addr != "127.0.0.1:9100" {
		t.Errorf("Metrics.Addr = %q", cfg.Metrics.Addr)
	}
	if cfg.Metrics.Namespace != "vango" {
		t.Errorf("Metrics.Namespace = %q, want default", cfg.Metrics.Namespace)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{
			name:     "invalid json",
			content:  `{"pool": `,
			wantCode: "E002",
		},
		{
			name:     "negative cap",
			content:  `{"pool": {"maxPerBucket": -1}}`,
			wantCode: "E003",
		},
		{
			name:     "prewarm over cap",
			content:  `{"pool": {"maxPerBucket": 4, "prewarm": {"div": 8}}}`,
			wantCode: "E003",
		},
		{
			name:     "bad level",
			content:  `{"log": {"level": "loud"}}`,
			wantCode: "E003",
		},
		{
			name:     "bad store",
			content:  `{"report": {"store": "ftp://x"}}`,
			wantCode: "E011",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, strings.ReplaceAll(tt.name, " ", "_")+".json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("LoadFile() error = nil")
			}
			if got := errors.Code(err); got != tt.wantCode {
				t.Errorf("code = %q, want %q (%v)", got, tt.wantCode, err)
			}
		})
	}

	_, err := LoadFile(filepath.Join(tmpDir, "missing.json"))
	if errors.Code(err) != "E001" || !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvMetricsAddr, ":9999")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Metrics.Addr != ":9999" {
		t.Errorf("Metrics.Addr = %q, want :9999", cfg.Metrics.Addr)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Error("Save() without a path should fail")
	}

	cfg.Pool.MaxPerBucket = 32
	path := filepath.Join(tmpDir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if !Exists(tmpDir) {
		t.Fatal("Exists() = false after SaveTo")
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Pool.MaxPerBucket != 32 {
		t.Errorf("Pool.MaxPerBucket = %d, want 32", loaded.Pool.MaxPerBucket)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "bucket", "DIV")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, `"bucket":"DIV"`) {
		t.Errorf("json output = %q", out)
	}
}

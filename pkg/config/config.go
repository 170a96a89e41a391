// Package config loads and validates the search engine's configuration
// from a YAML file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level engine configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// EngineConfig controls the in-memory engine's tunables.
type EngineConfig struct {
	// StopWords lists words query.Parse drops during ordinary search
	// (Match still sees them — see spec §4.4).
	StopWords []string `yaml:"stopWords"`
	// ConcurrentMapShards sets the bucket count for the sharded map used
	// by ScoreParallel. Any value >= 1 is correct; it only affects
	// contention.
	ConcurrentMapShards int `yaml:"concurrentMapShards"`
	// RequestQueueWindow sets the rolling window size (in AddFindRequest
	// calls) the request queue uses to track no-result requests.
	RequestQueueWindow int `yaml:"requestQueueWindow"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the optional Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads a YAML config file (if path is non-empty) and applies
// environment-variable overrides on top of sensible defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			StopWords:           nil,
			ConcurrentMapShards: 4,
			RequestQueueWindow:  1440,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
	}
}

// applyEnvOverrides reads SE_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SE_STOP_WORDS"); v != "" {
		cfg.Engine.StopWords = strings.Fields(v)
	}
	if v := os.Getenv("SE_CONCURRENT_MAP_SHARDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.ConcurrentMapShards = n
		}
	}
	if v := os.Getenv("SE_REQUEST_QUEUE_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.RequestQueueWindow = n
		}
	}
	if v := os.Getenv("SE_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SE_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SE_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("SE_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
}

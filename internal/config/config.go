// Package config loads and validates operational configuration via Viper.
// It never influences the functional inputs of a crawl (the feed-list URI
// is always a required positional CLI argument); it only tunes ambient
// knobs such as concurrency ceilings, HTTP timeouts, and the metrics
// listener.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// CrawlConfig mirrors the constants fixed by the design in spec.md §6.
type CrawlConfig struct {
	FeedGateSize     int `mapstructure:"feed_gate_size"`
	ThreadGateSize   int `mapstructure:"thread_gate_size"`
	PerOriginSize    int `mapstructure:"per_origin_size"`
	MaxMatchesToShow int `mapstructure:"max_matches_to_show"`
}

// HTTPConfig controls the collaborators' outbound HTTP behavior.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// MetricsConfig controls the optional Prometheus HTTP listener.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// LoggingConfig toggles zap's development encoder.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Config captures every ambient configuration knob loaded via Viper.
type Config struct {
	Crawl   CrawlConfig   `mapstructure:"crawl"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load builds a Config from an optional config file, a local .env file (if
// present), and NEWSAGG_-prefixed environment variables, in that ascending
// order of precedence.
func Load(path string) (Config, error) {
	// Best-effort local developer convenience; a missing .env is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("NEWSAGG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("crawl.feed_gate_size", 8)
	v.SetDefault("crawl.thread_gate_size", 64)
	v.SetDefault("crawl.per_origin_size", 12)
	v.SetDefault("crawl.max_matches_to_show", 15)
	v.SetDefault("http.timeout_seconds", 15)
	v.SetDefault("http.user_agent", "newsaggregator/1.0")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("logging.development", true)
}

// Validate enforces that every gate capacity and timeout is usable.
func (c Config) Validate() error {
	if c.Crawl.FeedGateSize <= 0 {
		return fmt.Errorf("crawl.feed_gate_size must be > 0")
	}
	if c.Crawl.ThreadGateSize <= 0 {
		return fmt.Errorf("crawl.thread_gate_size must be > 0")
	}
	if c.Crawl.PerOriginSize <= 0 {
		return fmt.Errorf("crawl.per_origin_size must be > 0")
	}
	if c.Crawl.MaxMatchesToShow <= 0 {
		return fmt.Errorf("crawl.max_matches_to_show must be > 0")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr must be set when metrics is enabled")
	}
	return nil
}

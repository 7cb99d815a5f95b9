package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Crawl.FeedGateSize)
	require.Equal(t, 64, cfg.Crawl.ThreadGateSize)
	require.Equal(t, 12, cfg.Crawl.PerOriginSize)
	require.Equal(t, 15, cfg.Crawl.MaxMatchesToShow)
}

func TestLoadWithFileOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
crawl:
  feed_gate_size: 4
  thread_gate_size: 32
  per_origin_size: 6
  max_matches_to_show: 5
http:
  timeout_seconds: 30
  user_agent: test-agent
metrics:
  enabled: true
  addr: ":9999"
logging:
  development: false
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Crawl.FeedGateSize)
	require.Equal(t, 32, cfg.Crawl.ThreadGateSize)
	require.Equal(t, 6, cfg.Crawl.PerOriginSize)
	require.Equal(t, 5, cfg.Crawl.MaxMatchesToShow)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, ":9999", cfg.Metrics.Addr)
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	base := Config{
		Crawl: CrawlConfig{FeedGateSize: 1, ThreadGateSize: 1, PerOriginSize: 1, MaxMatchesToShow: 1},
		HTTP:  HTTPConfig{TimeoutSeconds: 1},
	}

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"feed gate", func() Config { c := base; c.Crawl.FeedGateSize = 0; return c }(), "feed_gate_size"},
		{"thread gate", func() Config { c := base; c.Crawl.ThreadGateSize = 0; return c }(), "thread_gate_size"},
		{"per origin", func() Config { c := base; c.Crawl.PerOriginSize = 0; return c }(), "per_origin_size"},
		{"max matches", func() Config { c := base; c.Crawl.MaxMatchesToShow = 0; return c }(), "max_matches_to_show"},
		{"timeout", func() Config { c := base; c.HTTP.TimeoutSeconds = 0; return c }(), "timeout_seconds"},
		{"metrics addr", func() Config {
			c := base
			c.Metrics.Enabled = true
			c.Metrics.Addr = ""
			return c
		}(), "metrics.addr"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

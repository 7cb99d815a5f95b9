package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuildsAppFromDefaults(t *testing.T) {
	t.Parallel()

	a, err := New("")
	require.NoError(t, err)
	require.NotNil(t, a.Logger())
	require.Equal(t, 8, a.Config().Crawl.FeedGateSize)
	require.False(t, a.Config().Metrics.Enabled)

	a.Close()
}

func TestNewStartsMetricsListenerWhenEnabled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("metrics:\n  enabled: true\n  addr: \"127.0.0.1:0\"\n"), 0o600))

	a, err := New(cfgPath)
	require.NoError(t, err)
	require.NotNil(t, a.metrics)

	a.Close()
}

func TestNewFailsOnInvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("crawl:\n  feed_gate_size: 0\n"), 0o600))

	_, err := New(cfgPath)
	require.Error(t, err)
}

package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YuchiLiuS/newsaggregator/internal/index"
	"github.com/YuchiLiuS/newsaggregator/internal/ingest"
)

const sampleRSS = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Sample</title>
    <item><title>First</title><link>http://a.example.com/1</link></item>
    <item><title>Second</title><link>http://b.example.com/2</link></item>
    <item><link>http://c.example.com/missing-title</link></item>
  </channel>
</rss>`

func newRSSServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestParseFeedListYieldsFeedRefs(t *testing.T) {
	t.Parallel()

	srv := newRSSServer(t, sampleRSS)
	src := NewGofeedSource("test-agent")

	refs, err := src.ParseFeedList(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, []ingest.FeedRef{
		{URL: "http://a.example.com/1", Title: "First"},
		{URL: "http://b.example.com/2", Title: "Second"},
	}, refs)
}

func TestParseFeedYieldsArticles(t *testing.T) {
	t.Parallel()

	srv := newRSSServer(t, sampleRSS)
	src := NewGofeedSource("test-agent")

	articles, err := src.ParseFeed(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, []index.Article{
		{Title: "First", URL: "http://a.example.com/1"},
		{Title: "Second", URL: "http://b.example.com/2"},
	}, articles)
}

func TestParseFeedListFailsOnUnreachableURI(t *testing.T) {
	t.Parallel()

	src := NewGofeedSource("test-agent")
	_, err := src.ParseFeedList(context.Background(), "http://127.0.0.1:0/nope")
	require.Error(t, err)
}

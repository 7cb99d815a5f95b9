// Package ingest implements the concurrent ingestion pipeline: the
// Aggregator Driver, Feed Workers, and Article Workers described in
// spec.md §4.4-4.6. It consumes three narrow collaborator interfaces
// (feed-list, feed, and HTML-tokenizer) and populates a shared Token
// Index.
package ingest

import (
	"context"

	"github.com/YuchiLiuS/newsaggregator/internal/index"
)

// FeedRef is one (feed-url, feed-title) pair yielded by the feed-list
// collaborator.
type FeedRef struct {
	URL   string
	Title string
}

// FeedListSource parses a feed-list URI into an ordered sequence of feed
// references. Failure is fatal to the whole ingestion run.
type FeedListSource interface {
	ParseFeedList(ctx context.Context, uri string) ([]FeedRef, error)
}

// FeedSource parses one feed URL into an ordered sequence of articles.
// Failure is local: the feed contributes no articles, siblings unaffected.
type FeedSource interface {
	ParseFeed(ctx context.Context, feedURL string) ([]index.Article, error)
}

// ArticleFetcher fetches one article's HTML body and returns its
// normalized token stream. Failure is local: the article contributes no
// postings, siblings unaffected.
type ArticleFetcher interface {
	FetchAndTokenize(ctx context.Context, article index.Article) ([]string, error)
}

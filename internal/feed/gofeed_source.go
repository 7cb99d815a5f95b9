// Package feed implements the feed-list and feed collaborators of
// spec.md §6 on top of github.com/mmcdole/gofeed. A feed list is itself
// an RSS/Atom document whose items name feeds (link, title); a feed is
// the same shape of document whose items name articles. Both are parsed
// through the same gofeed.Parser.
package feed

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/YuchiLiuS/newsaggregator/internal/index"
	"github.com/YuchiLiuS/newsaggregator/internal/ingest"
)

// GofeedSource implements both ingest.FeedListSource and ingest.FeedSource.
type GofeedSource struct {
	parser *gofeed.Parser
}

// NewGofeedSource constructs a GofeedSource with the given user agent.
func NewGofeedSource(userAgent string) *GofeedSource {
	p := gofeed.NewParser()
	if userAgent != "" {
		p.UserAgent = userAgent
	}
	return &GofeedSource{parser: p}
}

// ParseFeedList fetches and parses uri as an RSS/Atom document, yielding
// one FeedRef per item that carries both a link and a title.
func (s *GofeedSource) ParseFeedList(ctx context.Context, uri string) ([]ingest.FeedRef, error) {
	parsed, err := s.parser.ParseURLWithContext(uri, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed list %q: %w", uri, err)
	}

	refs := make([]ingest.FeedRef, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Link == "" || item.Title == "" {
			continue
		}
		refs = append(refs, ingest.FeedRef{URL: item.Link, Title: item.Title})
	}
	return refs, nil
}

// ParseFeed fetches and parses feedURL as an RSS/Atom document, yielding
// one Article per item that carries both a link and a title.
func (s *GofeedSource) ParseFeed(ctx context.Context, feedURL string) ([]index.Article, error) {
	parsed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %q: %w", feedURL, err)
	}

	articles := make([]index.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Link == "" || item.Title == "" {
			continue
		}
		articles = append(articles, index.Article{Title: item.Title, URL: item.Link})
	}
	return articles, nil
}

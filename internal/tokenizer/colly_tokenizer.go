// Package tokenizer implements the HTML tokenizer collaborator of
// spec.md §6: it fetches an article's HTML body and reduces it to a
// normalized token stream.
package tokenizer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/YuchiLiuS/newsaggregator/internal/index"
)

// wordPattern matches runs of letters, digits, and apostrophes, the
// normalization applied to every article body.
var wordPattern = regexp.MustCompile(`[a-z0-9']+`)

// CollyTokenizer implements ingest.ArticleFetcher using a single-shot
// colly.Collector clone per request.
type CollyTokenizer struct {
	base *colly.Collector
}

// NewCollyTokenizer constructs a CollyTokenizer with the given user agent
// and per-request timeout.
func NewCollyTokenizer(userAgent string, timeout time.Duration) *CollyTokenizer {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	base := colly.NewCollector(colly.UserAgent(userAgent))
	base.SetRequestTimeout(timeout)
	return &CollyTokenizer{base: base}
}

// FetchAndTokenize fetches article.URL and returns its body text as a
// stream of lowercase word tokens, in document order, duplicates intact.
func (t *CollyTokenizer) FetchAndTokenize(ctx context.Context, article index.Article) ([]string, error) {
	c := t.base.Clone()

	var (
		once   sync.Once
		tokens []string
		fail   error
	)
	done := make(chan struct{})

	finish := func(toks []string, err error) {
		once.Do(func() {
			tokens, fail = toks, err
			close(done)
		})
	}

	c.OnHTML("body", func(e *colly.HTMLElement) {
		finish(tokenize(e.DOM), nil)
	})
	c.OnError(func(r *colly.Response, err error) {
		finish(nil, fmt.Errorf("fetch %q: %w", article.URL, err))
	})
	c.OnScraped(func(_ *colly.Response) {
		finish([]string{}, nil)
	})

	if err := c.Request("GET", article.URL, nil, nil, nil); err != nil {
		return nil, fmt.Errorf("fetch %q: %w", article.URL, err)
	}

	select {
	case <-done:
		return tokens, fail
	case <-ctx.Done():
		return nil, fmt.Errorf("fetch %q: %w", article.URL, ctx.Err())
	}
}

// tokenize lowercases the selection's visible text and splits it into
// word tokens, dropping matches made only of apostrophes.
func tokenize(sel *goquery.Selection) []string {
	text := strings.ToLower(sel.Text())
	words := wordPattern.FindAllString(text, -1)
	tokens := words[:0]
	for _, w := range words {
		if strings.Trim(w, "'") != "" {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/YuchiLiuS/newsaggregator/internal/index"
	"github.com/YuchiLiuS/newsaggregator/internal/telemetry"
)

// articleWorker is the Article Worker of spec.md §4.4: it acquires the
// Thread gate, tokenizes one article, merges the result into the index,
// and releases every slot it holds on every exit path.
type articleWorker struct {
	d *Driver
}

func newArticleWorker(d *Driver) *articleWorker {
	return &articleWorker{d: d}
}

func (w *articleWorker) run(ctx context.Context, article index.Article, releaseOrigin func(), idx *index.Index) {
	defer releaseOrigin()

	waitStart := time.Now()
	releaseThread, err := w.d.threadGate.Acquire(ctx)
	telemetry.ObserveGateWait("thread", time.Since(waitStart))
	if err != nil {
		w.d.logger.Warn("thread gate acquire failed", zap.String("url", article.URL), zap.Error(err))
		return
	}
	defer releaseThread()

	telemetry.IncActiveWorkers("thread")
	defer telemetry.DecActiveWorkers("thread")

	w.d.progress.lines(
		fmt.Sprintf("  Parsing \"%s\"", article.Title),
		fmt.Sprintf("  [at \"%s\"]", article.URL),
	)

	tokens, err := w.d.articles.FetchAndTokenize(ctx, article)
	if err != nil {
		telemetry.ObserveArticle("error")
		w.d.logger.Error("html fetch failed", zap.String("url", article.URL), zap.Error(err))
		return
	}

	idx.Add(article, tokens)
	telemetry.ObserveArticle("ok")
}

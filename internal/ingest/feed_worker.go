package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/YuchiLiuS/newsaggregator/internal/index"
	"github.com/YuchiLiuS/newsaggregator/internal/telemetry"
)

// feedWorker is the Feed Worker of spec.md §4.5. It holds one Feed gate
// slot on entry, parses its feed, releases the Feed gate before launching
// article workers, and awaits all article workers it launched.
type feedWorker struct {
	d *Driver
}

func newFeedWorker(d *Driver) *feedWorker {
	return &feedWorker{d: d}
}

func (w *feedWorker) run(ctx context.Context, ref FeedRef, releaseFeedGate func(), idx *index.Index) {
	w.d.progress.lines(fmt.Sprintf("Begin download of feed \"%s\" [%s]", ref.Title, ref.URL))

	articles, err := w.d.feeds.ParseFeed(ctx, ref.URL)
	if err != nil {
		releaseFeedGate()
		telemetry.ObserveFeed("error")
		w.d.logger.Error("feed fetch failed", zap.String("url", ref.URL), zap.Error(err))
		return
	}
	releaseFeedGate()
	telemetry.ObserveFeed("ok")

	var wg sync.WaitGroup
	for _, article := range articles {
		article := article

		waitStart := time.Now()
		originRelease, err := w.d.origins.Acquire(ctx, article.URL)
		telemetry.ObserveGateWait("origin", time.Since(waitStart))
		if err != nil {
			w.d.logger.Warn("origin limiter acquire failed", zap.String("url", article.URL), zap.Error(err))
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			newArticleWorker(w.d).run(ctx, article, originRelease, idx)
		}()
	}
	wg.Wait()

	w.d.progress.lines(fmt.Sprintf("End download of feed \"%s\" [%s]", ref.Title, ref.URL))
}

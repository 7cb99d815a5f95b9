package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YuchiLiuS/newsaggregator/internal/gate"
	"github.com/YuchiLiuS/newsaggregator/internal/index"
	"github.com/YuchiLiuS/newsaggregator/internal/origin"
	"github.com/YuchiLiuS/newsaggregator/internal/telemetry"
)

// Config controls the driver's concurrency ceilings, matching the
// constants fixed by spec.md §6.
type Config struct {
	FeedGateSize   int
	ThreadGateSize int
	PerOriginSize  int

	// Progress is where human-facing progress lines are written. Defaults
	// to os.Stdout when nil.
	Progress io.Writer
}

// Driver is the Aggregator Driver of spec.md §4.6: it parses the feed
// list, dispatches one Feed Worker per feed, and awaits full quiescence
// before returning the populated Token Index.
type Driver struct {
	feedList FeedListSource
	feeds    FeedSource
	articles ArticleFetcher

	feedGate   *gate.Gate
	threadGate *gate.Gate
	origins    *origin.Registry

	progress *progressWriter
	logger   *zap.Logger
}

// New constructs a Driver from its three collaborators and configuration.
func New(feedList FeedListSource, feeds FeedSource, articles ArticleFetcher, cfg Config, logger *zap.Logger) *Driver {
	out := cfg.Progress
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{
		feedList:   feedList,
		feeds:      feeds,
		articles:   articles,
		feedGate:   gate.New(cfg.FeedGateSize),
		threadGate: gate.New(cfg.ThreadGateSize),
		origins:    origin.NewRegistry(cfg.PerOriginSize),
		progress:   newProgressWriter(out),
		logger:     logger,
	}
}

// Run parses the feed list, ingests every reachable feed and article, and
// returns the populated Token Index. Only a feed-list-fetch-error is
// fatal; every other failure is logged and absorbed locally per spec.md §7.
func (d *Driver) Run(ctx context.Context, feedListURI string) (*index.Index, error) {
	idx := index.New()

	runID := uuid.NewString()
	d.logger = d.logger.With(zap.String("run_id", runID))
	d.logger.Info("run started", zap.String("feed_list", feedListURI))

	refs, err := d.feedList.ParseFeedList(ctx, feedListURI)
	if err != nil {
		d.logger.Error("feed list fetch failed", zap.String("uri", feedListURI), zap.Error(err))
		return nil, fmt.Errorf("parse feed list %q: %w", feedListURI, err)
	}

	var wg sync.WaitGroup
	for _, ref := range refs {
		ref := ref
		waitStart := time.Now()
		release, err := d.feedGate.Acquire(ctx)
		telemetry.ObserveGateWait("feed", time.Since(waitStart))
		if err != nil {
			// Only a canceled/expired context can produce this; there is no
			// cancellation path in normal operation, so this is unreachable
			// in practice but kept for graceful shutdown support.
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			newFeedWorker(d).run(ctx, ref, release, idx)
		}()
	}
	wg.Wait()

	d.logger.Info("run completed", zap.Int("feeds_dispatched", len(refs)))
	return idx, nil
}

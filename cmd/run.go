package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YuchiLiuS/newsaggregator/internal/feed"
	"github.com/YuchiLiuS/newsaggregator/internal/ingest"
	"github.com/YuchiLiuS/newsaggregator/internal/repl"
	"github.com/YuchiLiuS/newsaggregator/internal/tokenizer"
)

// newRunCmd creates the 'run' subcommand: exactly one positional argument,
// the feed-list URI, matching spec.md §6's CLI surface.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <feed-list-uri>",
		Short: "Ingest a feed list and open the interactive query loop",
		Args:  cobra.ExactArgs(1),
		RunE:  runAggregate,
	}
}

func runAggregate(c *cobra.Command, args []string) error {
	instance, err := resolveApp(c.Context())
	if err != nil {
		return err
	}
	cfg := instance.Config()
	logger := instance.Logger()

	source := feed.NewGofeedSource(cfg.HTTP.UserAgent)
	tok := tokenizer.NewCollyTokenizer(cfg.HTTP.UserAgent, secondsToDuration(cfg.HTTP.TimeoutSeconds))

	driver := ingest.New(source, source, tok, ingest.Config{
		FeedGateSize:   cfg.Crawl.FeedGateSize,
		ThreadGateSize: cfg.Crawl.ThreadGateSize,
		PerOriginSize:  cfg.Crawl.PerOriginSize,
		Progress:       os.Stdout,
	}, logger)

	idx, err := driver.Run(c.Context(), args[0])
	if err != nil {
		logger.Error("ingestion aborted", zap.String("feed_list", args[0]), zap.Error(err))
		return err
	}

	repl.Run(os.Stdin, os.Stdout, idx, cfg.Crawl.MaxMatchesToShow)
	return nil
}

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

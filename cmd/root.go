// Package cmd defines the CLI commands for the newsaggregator executable.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuchiLiuS/newsaggregator/internal/app"
)

var cfgFile string

type appKeyType string

const appKey appKeyType = "app"

// newApp is the application factory. It is a variable so tests can
// replace it with a mock factory.
var newApp = func(path string) (*app.App, error) {
	return app.New(path)
}

// newRootCmd builds the root command and wires the shared App into every
// subcommand's context.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "newsaggregator",
		Short: "A concurrent RSS news aggregator and query tool.",
		Long: `newsaggregator fetches every feed reachable from an RSS feed list,
fetches every article referenced by those feeds, tokenizes each article's
HTML body, and builds an in-memory inverted index. Once ingestion
completes, it offers an interactive query loop that ranks articles by how
frequently a queried term appears in them.`,

		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			instance, err := newApp(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to initialize application services: %w", err)
			}
			c.SetContext(context.WithValue(c.Context(), appKey, instance))
			return nil
		},

		PersistentPostRun: func(c *cobra.Command, _ []string) {
			if instance, ok := c.Context().Value(appKey).(*app.App); ok && instance != nil {
				instance.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none, defaults + environment only)")
	root.AddCommand(newRunCmd())
	return root
}

func resolveApp(ctx context.Context) (*app.App, error) {
	instance, ok := ctx.Value(appKey).(*app.App)
	if !ok || instance == nil {
		return nil, fmt.Errorf("application services not initialized")
	}
	return instance, nil
}

// Execute is the CLI entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-analyzer/internal/analysis"
	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/db"
	"github.com/jonathan/profile-analyzer/internal/fetch"
	"github.com/jonathan/profile-analyzer/internal/scraper"
	"github.com/jonathan/profile-analyzer/internal/server"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing profiles and matching them against job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a scoring configuration JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(serveConfigFile)
	if err != nil {
		return err
	}

	authCfg, err := config.NewAuthConfig()
	if err != nil {
		return fmt.Errorf("failed to load auth configuration: %w", err)
	}

	deps := server.Deps{
		Analyzer: analysis.New(cfg),
		Auth:     authCfg,
		Fetcher:  &jobFetcher{opts: fetch.DefaultOptions()},
	}

	// Persistence is optional; without DATABASE_URL analyses are not stored.
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		store, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		deps.Store = store
	} else {
		fmt.Fprintln(os.Stderr, "Warning: DATABASE_URL not set, persistence disabled")
	}

	if extractor, err := scraper.NewFromEnv(); err == nil {
		deps.Extractor = extractor
	} else {
		fmt.Fprintln(os.Stderr, "Warning: APIFY_API_TOKEN not set, profile URL extraction disabled")
	}

	agent, closeClient := newContentAgent(ctx)
	defer closeClient()
	deps.Suggester = agent

	srv, err := server.New(servePort, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// jobFetcher adapts the fetch package to the server's JobFetcher interface.
type jobFetcher struct {
	opts *fetch.Options
}

func (f *jobFetcher) JobDescription(ctx context.Context, jobURL string) (string, error) {
	posting, err := fetch.JobDescription(ctx, jobURL, f.opts)
	if err != nil {
		return "", err
	}
	return posting.Description, nil
}

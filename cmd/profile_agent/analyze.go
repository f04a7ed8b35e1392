package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/profile-analyzer/internal/analysis"
	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/content"
	"github.com/jonathan/profile-analyzer/internal/db"
	"github.com/jonathan/profile-analyzer/internal/fetch"
	"github.com/jonathan/profile-analyzer/internal/llm"
	"github.com/jonathan/profile-analyzer/internal/observability"
	"github.com/jonathan/profile-analyzer/internal/parsing"
	"github.com/jonathan/profile-analyzer/internal/scraper"
	"github.com/jonathan/profile-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a professional profile",
	Long:  "Analyze a professional profile from a URL or a JSON file, optionally matching it against a job description, and print the result as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeProfileURL  string
	analyzeProfileFile string
	analyzeJobText     string
	analyzeJobFile     string
	analyzeJobURL      string
	analyzeConfigFile  string
	analyzeOutputFile  string
	analyzeDatabaseURL string
	analyzeSuggest     bool
	analyzeVerbose     bool
	analyzeNoBrowser   bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeProfileURL, "profile-url", "", "Profile URL to scrape (requires APIFY_API_TOKEN)")
	analyzeCmd.Flags().StringVar(&analyzeProfileFile, "profile-file", "", "Path to a raw profile JSON file")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "Job description text")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job-file", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "Job posting URL to fetch")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to a scoring configuration JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to write the result JSON (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "database-url", "", "Postgres URL to persist the analysis (default: DATABASE_URL)")
	analyzeCmd.Flags().BoolVar(&analyzeSuggest, "suggest", false, "Add content suggestions (drafts require GEMINI_API_KEY)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted summaries to stderr")
	analyzeCmd.Flags().BoolVar(&analyzeNoBrowser, "no-browser", false, "Disable the headless browser fallback for --job-url")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeResult is the CLI output document.
type analyzeResult struct {
	ID          *uuid.UUID           `json:"id,omitempty"`
	Profile     *types.Profile       `json:"profile"`
	Analysis    *types.Analysis      `json:"analysis"`
	Suggestions *content.Suggestions `json:"suggestions,omitempty"`
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if (analyzeProfileURL == "") == (analyzeProfileFile == "") {
		return fmt.Errorf("exactly one of --profile-url or --profile-file is required")
	}
	if countSet(analyzeJobText, analyzeJobFile, analyzeJobURL) > 1 {
		return fmt.Errorf("at most one of --job-text, --job-file, --job-url may be set")
	}

	cfg, err := loadConfig(analyzeConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	raw, err := loadRawProfile(ctx, analyzeProfileURL, analyzeProfileFile)
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(ctx, analyzeJobText, analyzeJobFile, analyzeJobURL)
	if err != nil {
		return err
	}

	profile := parsing.Normalize(raw)
	result, err := analysis.New(cfg).Analyze(ctx, profile, jobDescription)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out := analyzeResult{Profile: profile, Analysis: result}

	if analyzeSuggest {
		agent, closeClient := newContentAgent(ctx)
		defer closeClient()
		out.Suggestions = agent.Suggest(ctx, profile, result, jobDescription)
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(profile)
		printer.PrintAnalysis(result)
		printer.PrintJobMatch(result.JobMatch)
		printer.PrintKeywords(result.Keywords)
	}

	if databaseURL := resolveDatabaseURL(analyzeDatabaseURL); databaseURL != "" {
		id, err := persistAnalysis(ctx, databaseURL, analyzeProfileURL, profile, result)
		if err != nil {
			return err
		}
		out.ID = &id
	}

	return writeResult(analyzeOutputFile, out)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func loadRawProfile(ctx context.Context, profileURL, profileFile string) (*types.RawProfile, error) {
	if profileFile != "" {
		data, err := os.ReadFile(profileFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file: %w", err)
		}
		var raw types.RawProfile
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse profile file: %w", err)
		}
		return &raw, nil
	}

	client, err := scraper.NewFromEnv()
	if err != nil {
		return nil, err
	}
	raw, err := client.ExtractProfile(ctx, profileURL)
	if err != nil {
		return nil, fmt.Errorf("profile extraction failed: %w", err)
	}
	return raw, nil
}

func loadJobDescription(ctx context.Context, jobText, jobFile, jobURL string) (string, error) {
	switch {
	case jobText != "":
		return jobText, nil
	case jobFile != "":
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	case jobURL != "":
		opts := fetch.DefaultOptions()
		opts.DisableBrowser = analyzeNoBrowser
		posting, err := fetch.JobDescription(ctx, jobURL, opts)
		if err != nil {
			return "", fmt.Errorf("job fetch failed: %w", err)
		}
		return posting.Description, nil
	default:
		return "", nil
	}
}

// newContentAgent builds the suggestions agent, with generated drafts only
// when GEMINI_API_KEY is set.
func newContentAgent(ctx context.Context) (*content.Agent, func()) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return content.New(nil), func() {}
	}

	client, err := llm.NewGemini(ctx, nil, apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: draft generation disabled: %v\n", err)
		return content.New(nil), func() {}
	}
	return content.New(client), func() { _ = client.Close() }
}

func resolveDatabaseURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}

func persistAnalysis(ctx context.Context, databaseURL, profileURL string, profile *types.Profile, result *types.Analysis) (uuid.UUID, error) {
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	id, err := store.SaveAnalysis(ctx, profileURL, profile, result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

func writeResult(path string, result analyzeResult) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func countSet(values ...string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

// Package main provides the entry point for the profile analyzer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profile_agent",
	Short: "Professional profile analyzer",
	Long:  "Profile Analyzer scores scraped professional profiles for completeness, content quality, and keyword coverage, and matches them against job descriptions via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the valuation_agent CLI and HTTP API server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/carllingstrom/AI-Delning-sub000/internal/config"
	"github.com/carllingstrom/AI-Delning-sub000/internal/logging"
)

var (
	configPath string
	appConfig  config.Config
	logger     = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "valuation_agent",
	Short: "Valuation and data-completeness scoring for digitalisation projects",
	Long: `valuation_agent values public-sector digitalisation projects (costs, effects,
economic and qualitative ROI, payback period) and scores how complete their
recorded data is. It runs as a CLI over JSON project files or as an HTTP API.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (JSON or YAML); defaults to ./valuation.*")
}

// loadConfig reads the config file and environment before any command runs.
// CLI logs go to stderr so that JSON output on stdout stays clean.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg.MergeWithDefaults(config.Config{})

	logger = logging.New(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")))
	slog.SetDefault(logger)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

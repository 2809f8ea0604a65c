package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carllingstrom/AI-Delning-sub000/internal/db"
	"github.com/carllingstrom/AI-Delning-sub000/internal/logging"
	"github.com/carllingstrom/AI-Delning-sub000/internal/schemas"
	"github.com/carllingstrom/AI-Delning-sub000/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that values, scores and summarizes projects. Stored
projects are read from PostgreSQL (database_url) or SQLite (sqlite_path); with
neither configured only the submission endpoints have data to work on.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := appConfig
	if servePort > 0 {
		cfg.Port = servePort
	}
	logger = logging.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store db.Store
	if cfg.DatabaseURL == "" && cfg.SQLitePath == "" {
		logger.Warn("no database configured, serving an empty in-memory project store")
		store = db.NewMemoryStore()
	} else {
		opened, err := db.Open(ctx, cfg.DatabaseURL, cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		store = opened
	}
	defer store.Close()

	schema, err := schemas.NewProjectValidator(cfg.SchemaPath)
	if err != nil {
		return fmt.Errorf("failed to load project schema: %w", err)
	}

	srv := server.New(server.Config{Port: cfg.Port}, store, newEvaluator(cfg, 0), schema, logger)
	return srv.Start(ctx)
}

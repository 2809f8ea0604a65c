package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carllingstrom/AI-Delning-sub000/internal/db"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load project files into the configured database",
	Long: `Load every *.json project file below a directory into the database named by
database_url (PostgreSQL) or sqlite_path (SQLite). Records are keyed by the
project's "id" when it is a UUID; other projects get a new ID.`,
	RunE: runImport,
}

var importDir string

func init() {
	importCmd.Flags().StringVarP(&importDir, "dir", "d", "", "Directory of project JSON files (required)")

	_ = importCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := db.Open(ctx, appConfig.DatabaseURL, appConfig.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	return importDirectory(ctx, cmd.OutOrStdout(), store, importDir)
}

func importDirectory(ctx context.Context, out io.Writer, store db.Store, dir string) error {
	inputs, err := loader.LoadDir(dir)
	if err != nil {
		return err
	}

	imported, skipped := 0, 0
	for _, in := range inputs {
		rec, err := db.NewProjectRecord(in.Raw)
		if err != nil {
			logger.Warn("skipping unreadable project", "project_id", in.ID, "error", err)
			skipped++
			continue
		}
		if err := store.SaveProject(ctx, rec); err != nil {
			return fmt.Errorf("failed to save project %s: %w", in.ID, err)
		}
		imported++
	}

	fmt.Fprintf(out, "Imported %d project(s), skipped %d\n", imported, skipped)
	return nil
}

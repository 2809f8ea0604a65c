package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/carllingstrom/AI-Delning-sub000/internal/analytics"
	"github.com/carllingstrom/AI-Delning-sub000/internal/config"
	"github.com/carllingstrom/AI-Delning-sub000/internal/ingestion"
	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
	"github.com/carllingstrom/AI-Delning-sub000/internal/valuation"
)

// loader reads project files; tests replace it with an in-memory filesystem.
var loader = ingestion.NewOsLoader()

func newEngine(cfg config.Config) *valuation.Engine {
	return valuation.NewEngine(valuation.Options{
		LegacyMonthlyAnnualization: cfg.LegacyMonthlyAnnualization,
	})
}

func newEvaluator(cfg config.Config, workers int) *analytics.Evaluator {
	if workers <= 0 {
		workers = cfg.BatchWorkers
	}
	return analytics.NewEvaluator(newEngine(cfg), workers, logger)
}

// readProject loads and leniently decodes one project file, returning the
// raw bytes alongside for schema validation.
func readProject(path string) (*types.Project, []byte, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("--project is required")
	}
	data, err := loader.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read project file: %w", err)
	}
	p, err := types.DecodeProject(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}
	return p, data, nil
}

// writeJSON writes v as indented JSON to outPath, or to w when outPath is empty.
func writeJSON(w io.Writer, outPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

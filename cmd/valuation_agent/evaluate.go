package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carllingstrom/AI-Delning-sub000/internal/observability"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate every project file in a directory",
	Long: `Value and score every *.json project file below a directory concurrently and
write a portfolio report as JSON. A file may hold one project or an array of
projects. Projects that cannot be evaluated are listed as failures and do not
stop the batch.`,
	RunE: runEvaluate,
}

var (
	evaluateDir        string
	evaluateOutputFile string
	evaluateWorkers    int
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateDir, "dir", "d", "", "Directory of project JSON files (required)")
	evaluateCmd.Flags().StringVarP(&evaluateOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	evaluateCmd.Flags().IntVarP(&evaluateWorkers, "workers", "w", 0, "Concurrent workers (default from config)")

	_ = evaluateCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	return evaluateDirectory(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), evaluateDir, evaluateOutputFile, evaluateWorkers)
}

func evaluateDirectory(ctx context.Context, out, errOut io.Writer, dir, outputFile string, workers int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	inputs, err := loader.LoadDir(dir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no project files found in %s", dir)
	}

	report, err := newEvaluator(appConfig, workers).Evaluate(ctx, inputs)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(errOut)
	printer.PrintPortfolio(&report.Totals)
	printer.PrintFailures(report.Failures)

	return writeJSON(out, outputFile, report)
}

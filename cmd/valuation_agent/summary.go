package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/carllingstrom/AI-Delning-sub000/internal/observability"
	"github.com/carllingstrom/AI-Delning-sub000/internal/scoring"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a human-readable valuation and completeness summary",
	RunE:  runSummary,
}

var summaryProjectFile string

func init() {
	summaryCmd.Flags().StringVarP(&summaryProjectFile, "project", "p", "", "Path to project JSON file (required)")

	_ = summaryCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	return writeSummary(cmd.OutOrStdout(), summaryProjectFile)
}

func writeSummary(out io.Writer, projectFile string) error {
	p, _, err := readProject(projectFile)
	if err != nil {
		return err
	}

	v := newEngine(appConfig).Evaluate(p)
	score := scoring.ScoreProject(p)
	observability.NewPrinter(out).PrintSummary(p, &v, &score)
	return nil
}

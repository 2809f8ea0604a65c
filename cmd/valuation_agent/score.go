package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carllingstrom/AI-Delning-sub000/internal/observability"
	"github.com/carllingstrom/AI-Delning-sub000/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the data completeness of a project",
	Long:  "Score how completely a project's data is filled in (0-100) with a per-category breakdown and the most valuable missing items.",
	RunE:  runScore,
}

var (
	scoreProjectFile string
	scoreOutputFile  string
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProjectFile, "project", "p", "", "Path to project JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a human-readable breakdown to stderr")

	_ = scoreCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	return writeScore(cmd.OutOrStdout(), cmd.ErrOrStderr(), scoreProjectFile, scoreOutputFile, scoreVerbose)
}

func writeScore(out, errOut io.Writer, projectFile, outputFile string, verbose bool) error {
	p, _, err := readProject(projectFile)
	if err != nil {
		return err
	}

	score := scoring.ScoreProject(p)
	if verbose {
		observability.NewPrinter(errOut).PrintScore(&score)
	}

	if err := writeJSON(out, outputFile, score); err != nil {
		return err
	}
	if outputFile != "" {
		fmt.Fprintf(errOut, "Score written to %s\n", outputFile)
	}
	return nil
}

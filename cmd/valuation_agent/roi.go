package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carllingstrom/AI-Delning-sub000/internal/observability"
)

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Compute the valuation and ROI metrics of a project",
	Long: `Normalize a project's cost and effect entries to SEK and aggregate them into
economic ROI, qualitative ROI and payback period. Writes the valuation as JSON.`,
	RunE: runROI,
}

var (
	roiProjectFile string
	roiOutputFile  string
	roiVerbose     bool
)

func init() {
	roiCmd.Flags().StringVarP(&roiProjectFile, "project", "p", "", "Path to project JSON file (required)")
	roiCmd.Flags().StringVarP(&roiOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	roiCmd.Flags().BoolVarP(&roiVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	_ = roiCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(roiCmd)
}

func runROI(cmd *cobra.Command, _ []string) error {
	return writeROI(cmd.OutOrStdout(), cmd.ErrOrStderr(), roiProjectFile, roiOutputFile, roiVerbose)
}

func writeROI(out, errOut io.Writer, projectFile, outputFile string, verbose bool) error {
	p, _, err := readProject(projectFile)
	if err != nil {
		return err
	}

	v := newEngine(appConfig).Evaluate(p)
	if verbose {
		observability.NewPrinter(errOut).PrintValuation(&v)
	}

	if err := writeJSON(out, outputFile, v); err != nil {
		return err
	}
	if outputFile != "" {
		fmt.Fprintf(errOut, "Valuation written to %s\n", outputFile)
	}
	return nil
}

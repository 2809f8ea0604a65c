package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carllingstrom/AI-Delning-sub000/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a project file against the project JSON schema",
	Long: `Validate a project file against the project JSON schema. Validation is
advisory: the valuation engine accepts records that fail it. Use --strict to
exit with an error when the file does not match.`,
	RunE: runValidate,
}

var (
	validateProjectFile string
	validateStrict      bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateProjectFile, "project", "p", "", "Path to project JSON file (required)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Fail when the project does not match the schema")

	_ = validateCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	return validateProject(cmd.OutOrStdout(), validateProjectFile, appConfig.SchemaPath, validateStrict)
}

func validateProject(out io.Writer, projectFile, schemaPath string, strict bool) error {
	if projectFile == "" {
		return fmt.Errorf("--project is required")
	}
	data, err := loader.ReadFile(projectFile)
	if err != nil {
		return fmt.Errorf("failed to read project file: %w", err)
	}

	v, err := schemas.NewProjectValidator(schemaPath)
	if err != nil {
		return err
	}

	warnings := v.Warnings(data)
	if len(warnings) == 0 {
		fmt.Fprintf(out, "✓ %s matches the project schema\n", projectFile)
		return nil
	}

	fmt.Fprintf(out, "%s has %d schema warning(s):\n", projectFile, len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(out, "  • %s\n", w)
	}
	if strict {
		return fmt.Errorf("project does not match the schema")
	}
	return nil
}

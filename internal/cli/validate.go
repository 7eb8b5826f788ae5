package cli

import (
	"fmt"

	"github.com/Tokir224/Task-Dependency-Visualizer/internal/jobs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a jobs file",
	Long: `Validate a jobs file for structural correctness without rendering.

Checks for:
- Required fields (schema_version, plan.name, at least one usable job row)
- Unique job IDs
- Dependency references that match existing job IDs (every invalid token
  is reported per job, not just the first)
- No cycles in the dependency graph

Exit codes:
  0 - Valid jobs file
  1 - Invalid jobs file or validation errors`,
	Example: `  # Validate a jobs file
  jobviz validate jobs.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	if err := validateFileArg(filePath); err != nil {
		return err
	}

	if _, err := loadConfig(); err != nil {
		return err
	}

	result, err := jobs.ParseJobsFile(filePath)
	if err != nil {
		return formatParseError(filePath, err)
	}

	snapshot, errs := jobs.Commit(result.Config, result)
	if len(errs) > 0 {
		return formatValidationErrors(filePath, errs)
	}

	printValidMessage(snapshot, result)
	return nil
}

// printValidMessage prints the validation success summary.
func printValidMessage(s *jobs.Snapshot, result *jobs.ParseResult) {
	green := color.New(color.FgGreen, color.Bold)
	green.Print("Valid")
	fmt.Printf(" - plan %q\n", s.PlanName)
	fmt.Printf("  %d job(s), %d layer(s), %d dependency edge(s)\n",
		len(s.Jobs), s.Layers.MaxLayer()+1, s.Graph.EdgeCount())

	if result.SkippedRows > 0 {
		yellow := color.New(color.FgYellow)
		yellow.Printf("  %d row(s) skipped for missing id or name\n", result.SkippedRows)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

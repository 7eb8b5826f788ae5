package cli

import (
	"fmt"

	"github.com/Tokir224/Task-Dependency-Visualizer/internal/jobs"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Validate, layer, and render a jobs file",
	Long: `Run the full pipeline on a jobs file: parse the job rows, validate every
dependency reference, build the dependency graph, assign execution layers,
and render the ordered table plus the layered diagram.

Layers group jobs by the longest dependency chain ending at each job, so
every job's dependencies sit in a strictly earlier layer.

Validation is a hard gate: if any job references an unknown dependency,
all invalid references are listed per job and nothing is rendered.

Exit codes:
  0 - Pipeline completed, output rendered
  1 - Parse, validation, or cycle error`,
	Example: `  # Generate table and diagram with defaults
  jobviz generate jobs.yaml

  # Left-to-right DOT output for piping into Graphviz
  jobviz generate --orientation left-right --format dot jobs.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var compactFlag bool

func runGenerate(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	if err := validateFileArg(filePath); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orientation, err := resolveOrientation(cmd, cfg)
	if err != nil {
		return err
	}
	format, err := resolveFormat(cmd, cfg)
	if err != nil {
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

	printSuccessBanner(snapshot)
	fmt.Println()
	fmt.Println("Ordered Jobs for Execution")
	fmt.Println(jobs.RenderTable(snapshot, colorEnabled()))
	fmt.Println()

	if compactFlag {
		fmt.Println(jobs.RenderCompact(snapshot))
		return nil
	}

	fmt.Print(renderDiagram(snapshot, orientation, format))
	return nil
}

func init() {
	generateCmd.Flags().String("orientation", "", "Diagram orientation: top-bottom | bottom-top | left-right | right-left")
	generateCmd.Flags().String("format", "", "Diagram format: ascii | dot")
	generateCmd.Flags().BoolVar(&compactFlag, "compact", false, "Use compact single-line diagram output")
	rootCmd.AddCommand(generateCmd)
}

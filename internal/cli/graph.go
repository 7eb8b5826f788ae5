package cli

import (
	"fmt"

	"github.com/Tokir224/Task-Dependency-Visualizer/internal/jobs"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Render the layered dependency diagram",
	Long: `Render the layered dependency diagram for a jobs file, without the
ordered table or success banner.

The jobs file is validated first. If validation fails, errors are
displayed instead of the diagram.

Orientation is a pure coordinate transform: one axis encodes the layer,
the other spreads jobs to avoid overlap. Changing it re-renders the same
layer assignment; it never changes the layers themselves.

Exit codes:
  0 - Diagram rendered
  1 - Invalid jobs file or rendering errors`,
	Example: `  # ASCII diagram, top to bottom
  jobviz graph jobs.yaml

  # Graphviz DOT, right to left
  jobviz graph --format dot --orientation right-left jobs.yaml | dot -Tsvg -o plan.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
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

	fmt.Print(renderDiagram(snapshot, orientation, format))
	return nil
}

func init() {
	graphCmd.Flags().String("orientation", "", "Diagram orientation: top-bottom | bottom-top | left-right | right-left")
	graphCmd.Flags().String("format", "", "Diagram format: ascii | dot")
	rootCmd.AddCommand(graphCmd)
}

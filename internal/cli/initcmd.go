package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// starterJobsFile is the commented template written by 'jobviz init'.
const starterJobsFile = `# jobviz jobs file
# Each row defines a job by ID, display name, and the IDs it depends on.
# Dependencies accept a comma-separated string or a YAML list.
schema_version: "1.0"
plan:
  name: Build pipeline
jobs:
  - id: A
    name: Compile
  - id: B
    name: Link
    dependencies: "A"
  - id: C
    name: Test
    dependencies: "B"
`

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a starter jobs file",
	Long: `Write a commented starter jobs file to get going quickly.

The default target is jobs.yaml in the current directory. Refuses to
overwrite an existing file.`,
	Example: `  # Create jobs.yaml
  jobviz init

  # Create a custom file
  jobviz init pipelines/build.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "jobs.yaml"
	if len(args) == 1 {
		target = args[0]
	}

	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", target)
	}

	if err := os.WriteFile(target, []byte(starterJobsFile), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	green := color.New(color.FgGreen, color.Bold)
	green.Print("Created")
	fmt.Printf(" %s\n", target)
	fmt.Printf("  Edit it, then run: jobviz generate %s\n", target)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}

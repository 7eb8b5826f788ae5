// Package cli implements the jobviz command line interface.
package cli

import (
	"os"

	"github.com/Tokir224/Task-Dependency-Visualizer/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configFlag  string
	noColorFlag bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "jobviz",
	Short: "Visualize job dependencies as execution layers",
	Long: `jobviz reads a jobs file (id, name, dependencies per job), validates that
every referenced dependency exists, computes a topological layering of the
dependency graph, and renders an ordered execution table plus a layered
diagram.

Jobs files are YAML:

  schema_version: "1.0"
  plan:
    name: Build pipeline
  jobs:
    - id: A
      name: Compile
    - id: B
      name: Link
      dependencies: "A"

See https://github.com/Tokir224/Task-Dependency-Visualizer for details.`,
	Example: `  # Validate a jobs file
  jobviz validate jobs.yaml

  # Generate the ordered table and diagram
  jobviz generate jobs.yaml

  # Diagram only, laid out left to right
  jobviz graph --orientation left-right jobs.yaml

  # Regenerate on every save
  jobviz watch jobs.yaml`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the layered configuration, honoring the --config flag,
// and applies the color policy to global output state.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}

	applyColorPolicy(cfg.Color)
	return cfg, nil
}

// applyColorPolicy resolves the color setting against the --no-color flag
// and terminal detection.
func applyColorPolicy(setting string) {
	switch {
	case noColorFlag:
		color.NoColor = true
	case setting == "always":
		color.NoColor = false
	case setting == "never":
		color.NoColor = true
	default: // auto
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// colorEnabled reports whether colorized output is currently active.
func colorEnabled() bool {
	return !color.NoColor
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (overrides project config)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tokir224/Task-Dependency-Visualizer/internal/config"
	"github.com/Tokir224/Task-Dependency-Visualizer/internal/jobs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// validateFileArg checks that the positional argument is an existing file.
func validateFileArg(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", filePath)
		}
		return fmt.Errorf("accessing file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("expected file, got directory: %s", filePath)
	}

	return nil
}

// formatParseError reports a parse failure and exits.
func formatParseError(filePath string, err error) error {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(os.Stderr, "Error: ")
	fmt.Fprintf(os.Stderr, "Failed to parse %s\n", filepath.Base(filePath))
	fmt.Fprintf(os.Stderr, "  %v\n", err)
	os.Exit(1)
	return nil
}

// formatValidationErrors reports a numbered list of validation errors and
// exits. The snapshot is never committed when this path is taken.
func formatValidationErrors(filePath string, errs []error) error {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(os.Stderr, "Error: ")
	fmt.Fprintf(os.Stderr, "Validation failed for %s\n\n", filepath.Base(filePath))

	for i, err := range errs {
		fmt.Fprintf(os.Stderr, "  %d. %v\n", i+1, err)
	}

	fmt.Fprintf(os.Stderr, "\nFound %d validation error(s)\n", len(errs))
	os.Exit(1)
	return nil
}

// printSuccessBanner prints the jobs-updated confirmation.
func printSuccessBanner(s *jobs.Snapshot) {
	green := color.New(color.FgGreen, color.Bold)
	green.Print("Jobs updated successfully")
	fmt.Printf(" - plan %q: %d job(s) in %d layer(s)\n",
		s.PlanName, len(s.Jobs), s.Layers.MaxLayer()+1)
}

// resolveOrientation picks the orientation from the flag if set, otherwise
// from config.
func resolveOrientation(cmd *cobra.Command, cfg *config.Configuration) (jobs.Orientation, error) {
	value := cfg.Orientation
	if cmd.Flags().Changed("orientation") {
		value, _ = cmd.Flags().GetString("orientation")
	}
	return jobs.ParseOrientation(value)
}

// resolveFormat picks the diagram format from the flag if set, otherwise
// from config.
func resolveFormat(cmd *cobra.Command, cfg *config.Configuration) (string, error) {
	value := cfg.Format
	if cmd.Flags().Changed("format") {
		value, _ = cmd.Flags().GetString("format")
	}
	if value != "ascii" && value != "dot" {
		return "", fmt.Errorf("invalid format %q (valid: ascii, dot)", value)
	}
	return value, nil
}

// renderDiagram renders the snapshot diagram in the selected format.
func renderDiagram(s *jobs.Snapshot, orientation jobs.Orientation, format string) string {
	if format == "dot" {
		return jobs.RenderDOT(s, orientation)
	}
	return jobs.RenderDiagram(s, orientation, colorEnabled())
}

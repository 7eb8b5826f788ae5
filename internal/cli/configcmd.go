package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tokir224/Task-Dependency-Visualizer/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize jobviz configuration",
	Long: `Show the merged configuration or write a commented config template.

Configuration is layered: environment variables (JOBVIZ_*) override the
project config (.jobviz/config.yml), which overrides the user config
(~/.config/jobviz/config.yml), which overrides built-in defaults.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the merged configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("orientation: %s\n", cfg.Orientation)
		fmt.Printf("format: %s\n", cfg.Format)
		fmt.Printf("color: %s\n", cfg.Color)
		fmt.Printf("watch.debounce: %s\n", cfg.Watch.Debounce)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented project config template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := config.ProjectConfigPath()
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("refusing to overwrite existing file: %s", target)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}

		green := color.New(color.FgGreen, color.Bold)
		green.Print("Created")
		fmt.Printf(" %s\n", target)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

package cli

import (
	"fmt"

	"github.com/Tokir224/Task-Dependency-Visualizer/internal/build"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jobviz %s\n", build.Version)
		if verboseFlag {
			fmt.Printf("  commit: %s\n", build.Commit)
			fmt.Printf("  built:  %s\n", build.BuildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

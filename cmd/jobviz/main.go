package main

import (
	"os"

	"github.com/Tokir224/Task-Dependency-Visualizer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

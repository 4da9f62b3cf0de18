package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "draft",
	Short: "OpenDraft2D - 2D drafting and measurement tools",
	Long: `OpenDraft2D (draft) provides a 2D drafting editor and tools for
working with .draft shape files:
  - Interactive drawing with snapping and dimensions
  - Shape file inspection and measurement
  - A SQLite library of named drawings

Examples:
  draft ui                            # Launch the interactive editor
  draft ui --file plate.draft         # Edit an existing drawing
  draft info plate.draft              # Show drawing info
  draft measure plate.draft           # Print dimensions
  draft snap plate.draft --at 5,0.3   # Resolve a snap point
  draft library list                  # List stored drawings`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

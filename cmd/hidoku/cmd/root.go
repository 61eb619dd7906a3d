package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sbj42/hidoku/internal/clilog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hidoku",
	Short: "Generate and solve Hamilton-path number puzzles",
	Long: `hidoku generates, solves and inspects Hidato/Numbrix-style
number puzzles: fill a grid so consecutive numbers occupy adjacent cells.

It provides commands for:
  - generate: build a new puzzle with a given shape, pattern and difficulty
  - solve: fill in a puzzle's missing numbers
  - gaps: list the missing-number runs in a puzzle`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		clilog.Verbose = verbose
	},
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(gapsCmd)
}

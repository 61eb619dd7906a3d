package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbj42/hidoku/internal/solve"
)

var (
	gapsFile  string
	gapsWidth int
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "List the missing-number gaps in a puzzle grid",
	Long: `Gaps reads a partially-filled grid (one integer per cell, 0 or "."
for empty, whitespace-separated, reshaped to the width given by --w) from
a file or stdin and prints each maximal run of missing numbers bracketed
by its two numbered endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := readGridArg(gapsFile, gapsWidth)
		if err != nil {
			return err
		}

		gaps, longest := solve.ComputeGaps(grid)
		for _, g := range gaps {
			lo, hi := "open", "open"
			if !g.L1.IsNone() {
				lo = g.L1.String()
			}
			if !g.L2.IsNone() {
				hi = g.L2.String()
			}
			fmt.Printf("[%d..%d] length=%d  %s -> %s\n", g.N1, g.N2, g.Length(), lo, hi)
		}
		fmt.Printf("longest gap: %d\n", longest)
		return nil
	},
}

func init() {
	gapsCmd.Flags().StringVarP(&gapsFile, "file", "f", "", "grid file (default: stdin)")
	gapsCmd.Flags().IntVar(&gapsWidth, "w", 0, "grid width (0 = infer from input row layout)")
}

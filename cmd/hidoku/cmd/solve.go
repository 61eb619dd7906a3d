package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbj42/hidoku/internal/cliui"
	"github.com/sbj42/hidoku/internal/clilog"
	"github.com/sbj42/hidoku/internal/core"
	"github.com/sbj42/hidoku/internal/solve"
)

var (
	solveFile          string
	solveWidth         int
	solveDiagonal      bool
	solveMaxGapLength  int
	solveMaxDifficulty string
	solveStepLimit     int
	solveUniqueOnly    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle grid",
	Long: `Solve reads a partially-filled grid (one integer per cell, 0 or "."
for empty, whitespace-separated, reshaped to the width given by --w) from
a file or stdin and prints the completed grid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := readGridArg(solveFile, solveWidth)
		if err != nil {
			return err
		}

		maxGapLength := solveMaxGapLength
		if maxGapLength == 0 {
			maxGapLength = -1
		}

		clilog.Verbosef("solving %dx%d grid, diagonal=%v, difficulty=%s", grid.W, grid.H, solveDiagonal, solveMaxDifficulty)

		solved, ok := solve.Solve(grid, solve.Options{
			Diagonal:      solveDiagonal,
			MaxGapLength:  maxGapLength,
			MaxDifficulty: core.Difficulty(solveMaxDifficulty),
			StepLimit:     solveStepLimit,
			UniqueOnly:    solveUniqueOnly,
		})
		if !ok {
			return fmt.Errorf("solve: no solution found")
		}

		fmt.Print(cliui.RenderGrid(solved, grid))
		return nil
	},
}

// readGridArg reads a grid from path (or stdin, when path is empty). When
// width > 0 the input is treated as a flat, whitespace-separated stream of
// cell values reshaped to that width (SPEC_FULL.md's `--w`-driven CLI
// format); otherwise width is inferred from the input's row layout.
func readGridArg(path string, width int) (core.Grid, error) {
	r := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return core.Grid{}, fmt.Errorf("solve: %w", err)
		}
		defer f.Close()
		r = f
	}
	if width > 0 {
		return cliui.ParseGridWithWidth(r, width)
	}
	return cliui.ParseGrid(r)
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "grid file (default: stdin)")
	solveCmd.Flags().IntVar(&solveWidth, "w", 0, "grid width (0 = infer from input row layout)")
	solveCmd.Flags().BoolVarP(&solveDiagonal, "diagonal", "d", false, "allow diagonal adjacency")
	solveCmd.Flags().IntVar(&solveMaxGapLength, "max-gap-length", 0, "reject gaps longer than this during search (0 = unlimited)")
	solveCmd.Flags().StringVar(&solveMaxDifficulty, "max-difficulty", string(core.DifficultyHard), "EASY (deduction only) or HARD (allow backtracking)")
	solveCmd.Flags().IntVar(&solveStepLimit, "step-limit", 0, "backtracking step budget (0 = unlimited)")
	solveCmd.Flags().BoolVar(&solveUniqueOnly, "unique-only", false, "fail unless the solution is provably unique")
}

package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/sbj42/hidoku/internal/cliui"
	"github.com/sbj42/hidoku/internal/clilog"
	"github.com/sbj42/hidoku/internal/core"
	"github.com/sbj42/hidoku/internal/generator"
)

var (
	genW          int
	genH          int
	genDiagonal   bool
	genPattern    string
	genKeepEnds   bool
	genDifficulty string
	genSeed       int64
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a new puzzle",
	Long: `Generate builds a random Hamiltonian path over a W x H grid and
removes clues according to the chosen pattern, retrying until the result
is confirmed uniquely solvable at the requested difficulty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := core.Pattern(genPattern)
		difficulty := core.Difficulty(genDifficulty)

		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		clilog.Verbosef("seed=%d w=%d h=%d diagonal=%v pattern=%s difficulty=%s", seed, genW, genH, genDiagonal, pattern, difficulty)

		sp := cliui.NewSpinner("generating puzzle...")
		sp.Start()
		defer sp.Stop()

		rng := rand.New(rand.NewSource(seed))
		puzzle, err := generator.GeneratePuzzle(generator.Params{
			W:          genW,
			H:          genH,
			Diagonal:   genDiagonal,
			Pattern:    pattern,
			KeepEnds:   genKeepEnds,
			Difficulty: difficulty,
		}, rng, func(attempt int, stage string) {
			sp.UpdateMessage("generating puzzle... (attempt %d, %s)", attempt, stage)
		})
		sp.Stop()
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		clilog.Info("generated %dx%d puzzle (seed %d)", genW, genH, seed)
		fmt.Print(cliui.RenderGrid(puzzle, puzzle))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&genW, "w", 8, "grid width")
	generateCmd.Flags().IntVar(&genH, "h", 8, "grid height")
	generateCmd.Flags().BoolVarP(&genDiagonal, "diagonal", "d", false, "allow diagonal adjacency")
	generateCmd.Flags().StringVarP(&genPattern, "pattern", "p", string(core.PatternNone), "clue pattern: NONE, ROT2, RING, BORDER")
	generateCmd.Flags().BoolVar(&genKeepEnds, "keep-ends", false, "never remove the 1 and area clues")
	generateCmd.Flags().StringVar(&genDifficulty, "difficulty", string(core.DifficultyHard), "EASY or HARD")
	generateCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "PRNG seed (0 = time-based)")
}

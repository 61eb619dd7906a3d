package cliui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/sbj42/hidoku/internal/core"
)

var clueColor = color.New(color.FgGreen, color.Bold)

// RenderGrid prints grid as a right-aligned number table, one row per line.
// Cells present in clues (non-zero in the original puzzle) are highlighted
// in bold green when stdout is a terminal; empty cells print as dots, one
// per digit of the column width.
func RenderGrid(grid core.Grid, clues core.Grid) string {
	width := digitWidth(grid.Area())
	useColor := term.IsTerminal(int(os.Stdout.Fd()))

	var b strings.Builder
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			v := grid.At(x, y)
			var cell string
			if v == 0 {
				cell = strings.Repeat(".", width)
			} else {
				cell = fmt.Sprintf("%*d", width, v)
			}
			isClue := clues.Cells != nil && clues.At(x, y) != 0
			if isClue && useColor {
				cell = clueColor.Sprint(cell)
			}
			if x > 0 {
				b.WriteString(" ")
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func digitWidth(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}

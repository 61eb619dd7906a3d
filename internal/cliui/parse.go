package cliui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sbj42/hidoku/internal/core"
)

// ParseGrid reads a whitespace-separated number grid from r. Rows are
// separated by newlines; "." or "0" denote an empty cell. The grid's
// dimensions are inferred from the input: the first row's field count
// becomes the width.
func ParseGrid(r io.Reader) (core.Grid, error) {
	scanner := bufio.NewScanner(r)
	var rows [][]int
	width := -1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if width == -1 {
			width = len(fields)
		} else if len(fields) != width {
			return core.Grid{}, fmt.Errorf("cliui: row %d has %d fields, expected %d", len(rows)+1, len(fields), width)
		}
		row := make([]int, width)
		for i, f := range fields {
			if f == "." {
				row[i] = 0
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return core.Grid{}, fmt.Errorf("cliui: invalid cell %q: %w", f, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return core.Grid{}, err
	}
	if len(rows) == 0 {
		return core.Grid{}, fmt.Errorf("cliui: empty grid input")
	}

	grid := core.NewGrid(width, len(rows))
	for y, row := range rows {
		for x, v := range row {
			grid.Set(x, y, v)
		}
	}
	return grid, nil
}

// ParseGridWithWidth reads a flat, whitespace-separated stream of cell
// values (rows need not align with input lines) and reshapes it into a
// grid of the given width, per SPEC_FULL.md's `--w`-driven CLI input
// format. "." or "0" denote an empty cell.
func ParseGridWithWidth(r io.Reader, width int) (core.Grid, error) {
	if width <= 0 {
		return core.Grid{}, fmt.Errorf("cliui: width must be positive, got %d", width)
	}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var cells []int
	for scanner.Scan() {
		f := scanner.Text()
		if f == "." {
			cells = append(cells, 0)
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return core.Grid{}, fmt.Errorf("cliui: invalid cell %q: %w", f, err)
		}
		cells = append(cells, v)
	}
	if err := scanner.Err(); err != nil {
		return core.Grid{}, err
	}
	if len(cells) == 0 {
		return core.Grid{}, fmt.Errorf("cliui: empty grid input")
	}
	if len(cells)%width != 0 {
		return core.Grid{}, fmt.Errorf("cliui: %d cells is not a multiple of width %d", len(cells), width)
	}

	grid := core.NewGrid(width, len(cells)/width)
	copy(grid.Cells, cells)
	return grid, nil
}

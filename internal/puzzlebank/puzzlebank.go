// Package puzzlebank loads a set of pre-generated puzzles from a JSON
// file so the HTTP server can serve a deterministic "puzzle of the day"
// without paying generation cost on every request, falling back to
// on-demand generation when no bank is loaded. Grounded on the teacher's
// internal/puzzles/loader.go: a compact JSON format, a seed -> index hash
// via hash/fnv, and a package-level singleton guarded by sync.Once.
package puzzlebank

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"
	"time"

	"github.com/sbj42/hidoku/internal/core"
)

// Entry stores one pre-generated puzzle in compact form.
type Entry struct {
	W        int   `json:"w"`
	H        int   `json:"h"`
	Diagonal bool  `json:"diagonal"`
	Solution []int `json:"solution"` // one entry per cell, 1..W*H
	Givens   []int `json:"givens"`   // indices of cells that are clues
}

// BankFile is the top-level JSON structure.
type BankFile struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// Bank manages pre-generated puzzles.
type Bank struct {
	entries []Entry
	mu      sync.RWMutex
}

var (
	global   *Bank
	loadOnce sync.Once
	loadErr  error
)

// Load reads a bank from the JSON file at path.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzlebank: failed to read %s: %w", path, err)
	}
	var file BankFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("puzzlebank: failed to parse %s: %w", path, err)
	}
	return &Bank{entries: file.Entries}, nil
}

// LoadGlobal loads the process-wide singleton bank exactly once.
func LoadGlobal(path string) error {
	loadOnce.Do(func() {
		global, loadErr = Load(path)
	})
	return loadErr
}

// Global returns the singleton bank, or nil if none was loaded.
func Global() *Bank {
	return global
}

// SetGlobal installs a bank directly, for tests.
func SetGlobal(b *Bank) {
	global = b
}

// NewFromEntries builds a bank from in-memory entries, for tests.
func NewFromEntries(entries []Entry) *Bank {
	return &Bank{entries: entries}
}

// Count returns the number of entries in the bank.
func (b *Bank) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// ByIndex decodes the entry at index into a puzzle grid.
func (b *Bank) ByIndex(index int) (core.Grid, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if index < 0 || index >= len(b.entries) {
		return core.Grid{}, fmt.Errorf("puzzlebank: index %d out of range (0-%d)", index, len(b.entries)-1)
	}
	e := b.entries[index]

	a := e.W * e.H
	if len(e.Solution) != a {
		return core.Grid{}, fmt.Errorf("puzzlebank: entry %d solution length %d != area %d", index, len(e.Solution), a)
	}
	solution := e.Solution

	puzzle := core.NewGrid(e.W, e.H)
	given := make(map[int]bool, len(e.Givens))
	for _, idx := range e.Givens {
		given[idx] = true
	}
	for i, v := range solution {
		if given[i] {
			puzzle.Cells[i] = v
		}
	}
	return puzzle, nil
}

// BySeed deterministically maps a seed string to a bank entry via FNV
// hashing, the same scheme the teacher's GetPuzzleBySeed uses.
func (b *Bank) BySeed(seed string) (core.Grid, int, error) {
	b.mu.RLock()
	count := len(b.entries)
	b.mu.RUnlock()

	if count == 0 {
		return core.Grid{}, 0, fmt.Errorf("puzzlebank: no entries loaded")
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	index := int(h.Sum64() % uint64(count))

	grid, err := b.ByIndex(index)
	return grid, index, err
}

// ByDate returns the puzzle for a given UTC date, used for a daily puzzle.
func (b *Bank) ByDate(date time.Time) (core.Grid, int, error) {
	seed := "daily:" + date.UTC().Format("2006-01-02")
	return b.BySeed(seed)
}

// Command hidoku is a CLI for generating, solving and inspecting
// Hamilton-path number puzzles (Hidato/Numbrix-style grids).
package main

import "github.com/sbj42/hidoku/cmd/hidoku/cmd"

func main() {
	cmd.Execute()
}

// Package constants centralizes grid/solver tuning values, following the
// teacher's pkg/constants/constants.go.
package constants

import "time"

// Grid constants
const (
	MinGridSize = 3
	MaxGridArea = 99
)

// Solver limits
const (
	// MaxGapLengthDefault caps recursive depth in practice (spec §4.6).
	MaxGapLengthDefault = 9
)

// Session
const (
	SessionTokenExpiry = 1 * time.Hour
)

// Patterns
const (
	PatternNone   = "NONE"
	PatternRot2   = "ROT2"
	PatternRing   = "RING"
	PatternBorder = "BORDER"
)

// Difficulties
const (
	DifficultyEasy = "EASY"
	DifficultyHard = "HARD"
)

// API version
const APIVersion = "0.1.0"

// Default ports
const DefaultPort = "8080"

// Date format
const DateFormat = "2006-01-02"

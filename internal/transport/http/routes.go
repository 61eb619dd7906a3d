package http

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sbj42/hidoku/internal/core"
	"github.com/sbj42/hidoku/internal/generator"
	"github.com/sbj42/hidoku/internal/puzzlebank"
	"github.com/sbj42/hidoku/internal/solve"
	"github.com/sbj42/hidoku/pkg/config"
	"github.com/sbj42/hidoku/pkg/constants"
)

var cfg *config.Config

func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.GET("/daily", dailyHandler)
		api.POST("/generate", generateHandler)
		api.POST("/solve", solveHandler)
		api.POST("/gaps", gapsHandler)
		api.POST("/session/start", sessionStartHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// TodayUTC returns today's UTC date string.
func TodayUTC() string {
	return time.Now().UTC().Format(constants.DateFormat)
}

func dailyHandler(c *gin.Context) {
	dateUTC := TodayUTC()
	seed := "D" + dateUTC

	puzzleIndex := -1
	bank := puzzlebank.Global()
	if bank != nil {
		if _, idx, err := bank.ByDate(time.Now()); err == nil {
			puzzleIndex = idx
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date_utc":     dateUTC,
		"seed":         seed,
		"puzzle_index": puzzleIndex,
	})
}

type generateRequest struct {
	W          int    `json:"w" binding:"required"`
	H          int    `json:"h" binding:"required"`
	Diagonal   bool   `json:"diagonal"`
	Pattern    string `json:"pattern"`
	KeepEnds   bool   `json:"keep_ends"`
	Difficulty string `json:"difficulty"`
	Seed       string `json:"seed"`
}

func generateHandler(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	if req.W < 3 || req.H < 3 || req.W*req.H > cfg.MaxGridArea {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_dimensions"})
		return
	}

	pattern := core.Pattern(req.Pattern)
	if pattern == "" {
		pattern = core.PatternNone
	}
	if pattern != core.PatternNone && pattern != core.PatternRot2 &&
		pattern != core.PatternRing && pattern != core.PatternBorder {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_pattern"})
		return
	}

	difficulty := core.Difficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = core.DifficultyHard
	}
	if difficulty != core.DifficultyEasy && difficulty != core.DifficultyHard {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_difficulty"})
		return
	}

	seed := req.Seed
	if seed == "" {
		seed = fmt.Sprintf("%d", time.Now().UnixNano())
	}

	grid, err := generator.GeneratePuzzle(generator.Params{
		W:          req.W,
		H:          req.H,
		Diagonal:   req.Diagonal,
		Pattern:    pattern,
		KeepEnds:   req.KeepEnds,
		Difficulty: difficulty,
	}, rand.New(rand.NewSource(hashSeed(seed))), nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "generation_failed", "detail": err.Error()})
		return
	}

	puzzleID := fmt.Sprintf("%s-%dx%d-%s", seed, req.W, req.H, pattern)

	c.JSON(http.StatusOK, gin.H{
		"puzzle_id":  puzzleID,
		"seed":       seed,
		"w":          req.W,
		"h":          req.H,
		"diagonal":   req.Diagonal,
		"pattern":    pattern,
		"difficulty": difficulty,
		"grid":       grid.Cells,
	})
}

type solveRequest struct {
	Grid          []int  `json:"grid" binding:"required"`
	W             int    `json:"w" binding:"required"`
	H             int    `json:"h" binding:"required"`
	Diagonal      bool   `json:"diagonal"`
	MaxGapLength  int    `json:"max_gap_length"`
	MaxDifficulty string `json:"max_difficulty"`
	StepLimit     int    `json:"step_limit"`
	UniqueOnly    bool   `json:"unique_only"`
}

func solveHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	if len(req.Grid) != req.W*req.H {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_grid_size"})
		return
	}

	maxDifficulty := core.Difficulty(req.MaxDifficulty)
	if maxDifficulty == "" {
		maxDifficulty = core.DifficultyHard
	}
	if maxDifficulty != core.DifficultyEasy && maxDifficulty != core.DifficultyHard {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_difficulty"})
		return
	}

	grid := core.NewGrid(req.W, req.H)
	copy(grid.Cells, req.Grid)

	maxGapLength := req.MaxGapLength
	if maxGapLength == 0 {
		maxGapLength = -1
	}

	solved, ok := solve.Solve(grid, solve.Options{
		Diagonal:      req.Diagonal,
		MaxGapLength:  maxGapLength,
		MaxDifficulty: maxDifficulty,
		StepLimit:     req.StepLimit,
		UniqueOnly:    req.UniqueOnly,
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no_solution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"grid": solved.Cells})
}

type gapsRequest struct {
	Grid []int `json:"grid" binding:"required"`
	W    int   `json:"w" binding:"required"`
	H    int   `json:"h" binding:"required"`
}

type gapJSON struct {
	N1 int            `json:"n1"`
	N2 int            `json:"n2"`
	L1 *core.Location `json:"l1,omitempty"`
	L2 *core.Location `json:"l2,omitempty"`
}

func gapsHandler(c *gin.Context) {
	var req gapsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	if len(req.Grid) != req.W*req.H {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_grid_size"})
		return
	}

	grid := core.NewGrid(req.W, req.H)
	copy(grid.Cells, req.Grid)

	gaps, longest := solve.ComputeGaps(grid)

	out := make([]gapJSON, len(gaps))
	for i, g := range gaps {
		gj := gapJSON{N1: g.N1, N2: g.N2}
		if !g.L1.IsNone() {
			l := g.L1
			gj.L1 = &l
		}
		if !g.L2.IsNone() {
			l := g.L2
			gj.L2 = &l
		}
		out[i] = gj
	}

	c.JSON(http.StatusOK, gin.H{"gaps": out, "longest_gap": longest})
}

type sessionStartRequest struct {
	PuzzleID string `json:"puzzle_id" binding:"required"`
	Seed     string `json:"seed" binding:"required"`
	W        int    `json:"w" binding:"required"`
	H        int    `json:"h" binding:"required"`
	Diagonal bool   `json:"diagonal"`
}

func sessionStartHandler(c *gin.Context) {
	var req sessionStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	now := time.Now()
	session := SessionToken{
		W:         req.W,
		H:         req.H,
		Diagonal:  req.Diagonal,
		PuzzleID:  req.PuzzleID,
		Seed:      req.Seed,
		StartedAt: now,
		ExpiresAt: now.Add(constants.SessionTokenExpiry),
	}

	token, err := createToken(cfg.SessionSecret, session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token_creation_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expires_at": session.ExpiresAt})
}

// hashSeed deterministically maps a seed string to an int64 RNG seed via
// FNV, the same approach the teacher's hashSeed used for its on-demand
// puzzle generation fallback.
func hashSeed(seed string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64() & 0x7fffffffffffffff) //nolint:gosec // deterministic PRNG seed, not security-sensitive
}

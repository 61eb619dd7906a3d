package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sbj42/hidoku/pkg/config"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := &config.Config{
		SessionSecret: "test-session-secret-needs-32-chars-min",
		Port:          "8080",
		MaxGridArea:   99,
	}
	RegisterRoutes(r, c)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp["status"])
	require.NotEmpty(t, resp["version"])
}

func TestDailyHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/daily", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["seed"])
	require.NotEmpty(t, resp["date_utc"])
}

func TestGenerateHandler(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid small grid",
			body: map[string]interface{}{
				"w": 4, "h": 4, "diagonal": false,
				"pattern": "NONE", "difficulty": "EASY", "seed": "test-seed-1",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid dimensions too small",
			body: map[string]interface{}{
				"w": 1, "h": 1,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid pattern",
			body: map[string]interface{}{
				"w": 4, "h": 4, "pattern": "BOGUS",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid difficulty",
			body: map[string]interface{}{
				"w": 4, "h": 4, "difficulty": "MEDIUM",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, "POST", "/api/generate", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus == http.StatusOK {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.NotEmpty(t, resp["puzzle_id"])
				grid, ok := resp["grid"].([]interface{})
				require.True(t, ok)
				require.Len(t, grid, 16)
			}
		})
	}
}

func TestGenerateDeterminism(t *testing.T) {
	router := setupRouter()

	body := map[string]interface{}{
		"w": 4, "h": 4, "pattern": "NONE", "difficulty": "EASY", "seed": "determinism-seed",
	}

	w1 := doJSON(t, router, "POST", "/api/generate", body)
	require.Equal(t, http.StatusOK, w1.Code)
	var resp1 map[string]interface{}
	require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &resp1))

	w2 := doJSON(t, router, "POST", "/api/generate", body)
	require.Equal(t, http.StatusOK, w2.Code)
	var resp2 map[string]interface{}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp2))

	require.Equal(t, resp1["grid"], resp2["grid"])
}

func TestSolveHandler(t *testing.T) {
	router := setupRouter()

	// 4x4 grid from the spec's scenario 1, given as a partially filled puzzle.
	grid := []int{
		0, 0, 4, 3,
		0, 0, 0, 0,
		0, 7, 0, 9,
		0, 0, 0, 0,
	}

	body := map[string]interface{}{
		"grid": grid, "w": 4, "h": 4, "diagonal": false,
	}

	w := doJSON(t, router, "POST", "/api/solve", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	solved, ok := resp["grid"].([]interface{})
	require.True(t, ok)
	require.Len(t, solved, 16)
}

func TestSolveHandlerInvalidGridSize(t *testing.T) {
	router := setupRouter()

	body := map[string]interface{}{
		"grid": []int{1, 2, 3}, "w": 4, "h": 4,
	}

	w := doJSON(t, router, "POST", "/api/solve", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGapsHandler(t *testing.T) {
	router := setupRouter()

	grid := []int{
		1, 0, 0, 4,
		0, 0, 0, 0,
		0, 0, 0, 0,
		13, 0, 0, 16,
	}

	body := map[string]interface{}{"grid": grid, "w": 4, "h": 4}

	w := doJSON(t, router, "POST", "/api/gaps", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	gaps, ok := resp["gaps"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, gaps)
	require.Contains(t, resp, "longest_gap")
}

func TestSessionStartHandler(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid session start",
			body: map[string]interface{}{
				"puzzle_id": "test-puzzle", "seed": "test-seed",
				"w": 4, "h": 4, "diagonal": false,
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing puzzle_id",
			body: map[string]interface{}{
				"seed": "test-seed", "w": 4, "h": 4,
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, "POST", "/api/session/start", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus == http.StatusOK {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.NotEmpty(t, resp["token"])
			}
		})
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := "test-session-secret-needs-32-chars-min"
	session := SessionToken{
		W: 4, H: 4, Diagonal: false,
		PuzzleID: "p1", Seed: "s1",
	}
	session.ExpiresAt = session.ExpiresAt.Add(0)

	token, err := createToken(secret, session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = verifyToken(secret, token)
	// Zero-value ExpiresAt is in the past, so this must be rejected as expired.
	require.Error(t, err)
}

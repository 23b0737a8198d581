package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
)

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewMoveHandler(bot.NewCachedEngine(nil, 0), bot.Depths{Easy: 1, Medium: 2, Hard: 3}, 4)
	return NewRouter(handler, nil, []string{"http://localhost:5173"})
}

func post(t *testing.T, r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBestMoveOnEmptyBoard(t *testing.T) {
	board := domain.NewBoard()
	depth := 1
	w := post(t, newTestServer(), "/api/move", gin.H{"board": board.Grid(), "depth": depth})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp moveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Column != domain.CenterColumn || resp.Value != bot.SCORE_CENTER_WEIGHT || resp.Depth != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestBestMoveUsesDifficultyDepth(t *testing.T) {
	board := domain.MustParseBoard("OOO.XX.")
	w := post(t, newTestServer(), "/api/move", gin.H{"board": board.Grid(), "difficulty": "hard"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp moveResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Column != 3 || resp.Value != bot.MINIMAX_WIN || resp.Depth != 3 {
		t.Fatalf("expected winning move at depth 3, got %+v", resp)
	}
}

func TestBestMoveRejectsBadInput(t *testing.T) {
	r := newTestServer()
	empty := domain.NewBoard()
	tooDeep := 9
	negative := -1
	full := domain.MustParseBoard(
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
	)
	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{"missing board", gin.H{"depth": 1}, http.StatusBadRequest},
		{"short board", gin.H{"board": [][]int{{0, 0, 0, 0, 0, 0, 0}}}, http.StatusBadRequest},
		{"too deep", gin.H{"board": empty.Grid(), "depth": tooDeep}, http.StatusBadRequest},
		{"negative depth", gin.H{"board": empty.Grid(), "depth": negative}, http.StatusBadRequest},
		{"full board", gin.H{"board": full.Grid(), "depth": 2}, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := post(t, r, "/api/move", tt.body); w.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestIsLegal(t *testing.T) {
	board := domain.MustParseBoard(
		"X......",
		"O......",
		"X......",
		"O......",
		"X......",
		"O......",
	)
	r := newTestServer()
	for col, want := range map[int]bool{0: false, 1: true, 7: false, -1: false} {
		w := post(t, r, "/api/legal", gin.H{"board": board.Grid(), "column": col})
		if w.Code != http.StatusOK {
			t.Fatalf("column %d: expected 200, got %d", col, w.Code)
		}
		var resp struct {
			Legal bool `json:"legal"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Legal != want {
			t.Fatalf("column %d: expected legal=%v", col, want)
		}
	}
}

func TestStatus(t *testing.T) {
	board := domain.MustParseBoard("XXXX.OO")
	w := post(t, newTestServer(), "/api/status", gin.H{"board": board.Grid()})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp statusResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != domain.StatusWon || resp.Winner != int(domain.PlayerPiece) {
		t.Fatalf("unexpected status %+v", resp)
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPreflightReachesCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/move", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

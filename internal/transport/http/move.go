package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
)

// MoveHandler exposes the engine's entry points over HTTP. Every request
// carries the full board; nothing is kept between calls.
type MoveHandler struct {
	Engine   *bot.CachedEngine
	Depths   bot.Depths
	MaxDepth int
}

func NewMoveHandler(engine *bot.CachedEngine, depths bot.Depths, maxDepth int) *MoveHandler {
	return &MoveHandler{Engine: engine, Depths: depths, MaxDepth: maxDepth}
}

type moveRequest struct {
	Board      [][]int `json:"board" binding:"required"`
	Depth      *int    `json:"depth"`
	Difficulty string  `json:"difficulty"`
}

type moveResponse struct {
	Column int `json:"column"`
	Value  int `json:"value"`
	Depth  int `json:"depth"`
}

type legalRequest struct {
	Board  [][]int `json:"board" binding:"required"`
	Column *int    `json:"column" binding:"required"`
}

type boardRequest struct {
	Board [][]int `json:"board" binding:"required"`
}

type statusResponse struct {
	Status       domain.GameStatus `json:"status"`
	Winner       int               `json:"winner"`
	LegalColumns []int             `json:"legalColumns"`
}

// BestMove runs the search for the engine on the posted board.
func (h *MoveHandler) BestMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	board, err := domain.FromGrid(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	depth := h.Depths.For(bot.ParseDifficulty(req.Difficulty))
	if req.Depth != nil {
		depth = *req.Depth
	}
	if depth < 0 || depth > h.MaxDepth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "depth must be between 0 and the configured maximum", "maxDepth": h.MaxDepth})
		return
	}

	move, err := h.Engine.BestMove(c.Request.Context(), board, depth)
	if err != nil {
		if errors.Is(err, domain.ErrNoLegalMoves) || errors.Is(err, domain.ErrGameOver) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[BOT] Search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, moveResponse{Column: move.Column, Value: move.Value, Depth: depth})
}

// IsLegal reports whether a column can be played on the posted board.
func (h *MoveHandler) IsLegal(c *gin.Context) {
	var req legalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	board, err := domain.FromGrid(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"legal": board.IsLegal(*req.Column)})
}

// Status tells whether the posted board is won, drawn or still open.
func (h *MoveHandler) Status(c *gin.Context) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	board, err := domain.FromGrid(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, winner := domain.Status(&board)
	c.JSON(http.StatusOK, statusResponse{
		Status:       status,
		Winner:       int(winner),
		LegalColumns: board.LegalColumns(),
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

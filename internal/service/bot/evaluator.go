package bot

import (
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const (
	// Window scores, from the scored piece's point of view
	SCORE_FOUR          = 100
	SCORE_THREE_OPEN    = 10
	SCORE_TWO_OPEN      = 5
	SCORE_OPP_THREE     = -8
	SCORE_CENTER_WEIGHT = 6
)

// ScoreWindow scores a single 4-cell window for piece. The first three
// rows of the table are mutually exclusive; the opponent threat is
// added on top.
func ScoreWindow(w domain.Window, piece domain.Piece) int {
	score := 0
	opponent := piece.Opponent()
	own := w.Count(piece)
	empty := w.Count(domain.Empty)

	switch {
	case own == 4:
		score += SCORE_FOUR
	case own == 3 && empty == 1:
		score += SCORE_THREE_OPEN
	case own == 2 && empty == 2:
		score += SCORE_TWO_OPEN
	}

	if opponent != domain.Empty && w.Count(opponent) == 3 && empty == 1 {
		score += SCORE_OPP_THREE
	}

	return score
}

// ScorePosition scores the whole board strictly from piece's side. It
// does not subtract the opponent's positional score; call it once per
// player when both sides are needed.
func ScorePosition(board *domain.Board, piece domain.Piece) int {
	if !piece.Valid() {
		return 0
	}

	// Center column preference
	score := SCORE_CENTER_WEIGHT * board.CountInColumn(domain.CenterColumn, piece)

	board.EachWindow(func(w domain.Window) bool {
		score += ScoreWindow(w, piece)
		return true
	})

	return score
}

package bot

import (
	"math"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const (
	MINIMAX_WIN  = 10_000_000
	MINIMAX_LOSS = -10_000_000
	MINIMAX_DRAW = 0

	// NoColumn is returned with terminal and frontier values.
	NoColumn = -1
)

// Role says which side drops a piece at the current ply.
type Role int

const (
	Maximizer Role = iota // the engine
	Minimizer             // the human player
)

func (r Role) Piece() domain.Piece {
	if r == Maximizer {
		return domain.EnginePiece
	}
	return domain.PlayerPiece
}

func (r Role) Next() Role {
	if r == Maximizer {
		return Minimizer
	}
	return Maximizer
}

func (r Role) String() string {
	if r == Maximizer {
		return "maximizer"
	}
	return "minimizer"
}

// Move is a chosen column with its backed-up minimax value.
type Move struct {
	Column int
	Value  int
}

// Stats counts the work done by a Searcher.
type Stats struct {
	Nodes   int
	Cutoffs int
}

// Searcher runs depth-limited minimax. It is not safe for concurrent
// use; each search should get its own Searcher.
type Searcher struct {
	// Pruning enables alpha-beta cutoffs. Turning it off gives plain
	// minimax with the same result and more nodes visited.
	Pruning bool
	Stats   Stats
}

func NewSearcher() *Searcher {
	return &Searcher{Pruning: true}
}

// Minimax returns the best column for role and its value. Terminal and
// frontier positions return NoColumn. board is the caller's copy; the
// search plays and retracts pieces on it and leaves the caller's board
// as it was.
func (s *Searcher) Minimax(board domain.Board, depth int, alpha, beta int, role Role) (int, int) {
	return s.minimax(&board, depth, alpha, beta, role)
}

func (s *Searcher) minimax(board *domain.Board, depth int, alpha, beta int, role Role) (int, int) {
	s.Stats.Nodes++
	legal := board.LegalColumns()

	// Terminal conditions come before the depth check
	if domain.HasFourInRow(board, domain.EnginePiece) {
		return NoColumn, MINIMAX_WIN
	}
	if domain.HasFourInRow(board, domain.PlayerPiece) {
		return NoColumn, MINIMAX_LOSS
	}
	if len(legal) == 0 {
		return NoColumn, MINIMAX_DRAW
	}

	// frontier is always scored from the engine's side
	if depth <= 0 {
		return NoColumn, ScorePosition(board, domain.EnginePiece)
	}

	value := math.MaxInt
	if role == Maximizer {
		value = math.MinInt
	}
	// Every child value is finite, so the first column examined always
	// replaces this seed. The seed is never returned.
	column := legal[0]
	piece := role.Piece()

	for _, col := range legal {
		// legal came from this board, so Place and Retract cannot fail here
		if _, err := board.Place(col, piece); err != nil {
			panic(err)
		}
		_, score := s.minimax(board, depth-1, alpha, beta, role.Next())
		if err := board.Retract(col); err != nil {
			panic(err)
		}

		if role == Maximizer {
			if score > value {
				value = score
				column = col
				alpha = max(alpha, value)
			}
		} else {
			if score < value {
				value = score
				column = col
				beta = min(beta, value)
			}
		}

		if s.Pruning && alpha >= beta {
			s.Stats.Cutoffs++
			break
		}
	}

	return column, value
}

// Search picks the engine's move on board looking depth plies ahead.
// A depth of 0 scores each immediate move with the heuristic, which is
// the same as a one-ply search.
func (s *Searcher) Search(board domain.Board, depth int) (Move, error) {
	if depth < 0 {
		return Move{}, domain.ErrNegativeDepth
	}
	if board.IsFull() {
		return Move{}, domain.ErrNoLegalMoves
	}
	if depth == 0 {
		depth = 1
	}

	column, value := s.Minimax(board, depth, math.MinInt, math.MaxInt, Maximizer)
	if column == NoColumn {
		// board was already decided; there is nothing to search
		return Move{}, domain.ErrGameOver
	}
	return Move{Column: column, Value: value}, nil
}

// ChooseMove returns the column the engine should play.
func ChooseMove(board domain.Board, depth int) (int, error) {
	move, err := NewSearcher().Search(board, depth)
	if err != nil {
		return NoColumn, err
	}
	return move.Column, nil
}

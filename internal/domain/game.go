package domain

// Game is the live state owned by a turn loop: the one mutable board,
// whose turn it is and whether the game has ended. The engine never
// sees a Game, only copies of its Board.
type Game struct {
	Board         Board
	CurrentPlayer Piece
	Status        GameStatus
	Winner        Piece
	MoveCount     int
	LastRow       int
	LastColumn    int
}

// NewGame starts an empty game with first to move.
func NewGame(first Piece) *Game {
	if !first.Valid() {
		first = PlayerPiece
	}
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: first,
		Status:        StatusActive,
		Winner:        Empty,
		LastRow:       -1,
		LastColumn:    -1,
	}
}

// MakeMove drops piece into column for the side to move and updates the
// game status. It returns the row the piece landed on.
func (g *Game) MakeMove(piece Piece, column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}

	if piece != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	if !g.Board.IsLegal(column) {
		return -1, ErrInvalidMove
	}

	row, err := g.Board.Place(column, piece)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.LastRow, g.LastColumn = row, column

	if HasFourInRow(&g.Board, piece) {
		g.Status = StatusWon
		g.Winner = piece
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = piece.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

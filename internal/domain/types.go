package domain

const BotUsername = "BOT"

var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return BotUsername
}

// Piece is the content of a single cell, and also names whose
// perspective a win or score query is made from.
type Piece uint8

const (
	Empty       Piece = 0
	PlayerPiece Piece = 1
	EnginePiece Piece = 2
)

// Opponent returns the other non-empty piece. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case PlayerPiece:
		return EnginePiece
	case EnginePiece:
		return PlayerPiece
	default:
		return Empty
	}
}

func (p Piece) Valid() bool {
	return p == PlayerPiece || p == EnginePiece
}

func (p Piece) String() string {
	switch p {
	case PlayerPiece:
		return "player"
	case EnginePiece:
		return "engine"
	default:
		return "empty"
	}
}

const (
	Rows         = 6
	Columns      = 7
	WindowLength = 4
	CenterColumn = Columns / 2
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove      Error = "invalid move"
	ErrColumnFull       Error = "column is full"
	ErrColumnOutOfRange Error = "column out of range"
	ErrColumnEmpty      Error = "column is empty"
	ErrInvalidPiece     Error = "invalid piece"
	ErrInvalidBoard     Error = "invalid board"
	ErrGameOver         Error = "game is over"
	ErrNotYourTurn      Error = "not your turn"
	ErrNoLegalMoves     Error = "no legal moves"
	ErrNegativeDepth    Error = "search depth must not be negative"
)

package domain

import (
	"fmt"
	"strings"
)

// text symbols used by ParseBoard and String
const (
	emptySymbol  = '.'
	playerSymbol = 'X'
	engineSymbol = 'O'
)

// ParseBoard builds a board from text rows written top row first, the
// way the board is drawn on screen. Missing top rows count as empty.
//
//	ParseBoard(
//		"...O...",
//		"..XOX..",
//	)
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) > Rows {
		return b, fmt.Errorf("%w: %d rows, want at most %d", ErrInvalidBoard, len(rows), Rows)
	}
	for i, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != Columns {
			return b, fmt.Errorf("%w: row %q has %d cells, want %d", ErrInvalidBoard, line, len(line), Columns)
		}
		row := len(rows) - 1 - i
		for col, ch := range line {
			switch ch {
			case emptySymbol:
			case playerSymbol:
				b.cells[row][col] = PlayerPiece
			case engineSymbol:
				b.cells[row][col] = EnginePiece
			default:
				return b, fmt.Errorf("%w: unknown symbol %q", ErrInvalidBoard, ch)
			}
		}
	}
	if !b.checkGravity() {
		return Board{}, fmt.Errorf("%w: floating piece", ErrInvalidBoard)
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed positions known to be valid.
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			switch b.cells[row][col] {
			case PlayerPiece:
				sb.WriteByte(playerSymbol)
			case EnginePiece:
				sb.WriteByte(engineSymbol)
			default:
				sb.WriteByte(emptySymbol)
			}
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < Columns; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", col+1)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Key is a compact, stable encoding of the position, bottom row first.
func (b *Board) Key() string {
	buf := make([]byte, 0, Rows*Columns)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			buf = append(buf, '0'+byte(b.cells[row][col]))
		}
	}
	return string(buf)
}

// Grid converts the board to the wire format: row 0 is the top row,
// matching how clients render it.
func (b Board) Grid() [][]int {
	grid := make([][]int, Rows)
	for i := range grid {
		grid[i] = make([]int, Columns)
		row := Rows - 1 - i
		for col := 0; col < Columns; col++ {
			grid[i][col] = int(b.cells[row][col])
		}
	}
	return grid
}

// FromGrid is the inverse of Grid. It rejects wrong dimensions, unknown
// cell values and positions that break the gravity invariant.
func FromGrid(grid [][]int) (Board, error) {
	var b Board
	if len(grid) != Rows {
		return b, fmt.Errorf("%w: %d rows, want %d", ErrInvalidBoard, len(grid), Rows)
	}
	for i, cells := range grid {
		if len(cells) != Columns {
			return b, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, i, len(cells), Columns)
		}
		row := Rows - 1 - i
		for col, v := range cells {
			if v < int(Empty) || v > int(EnginePiece) {
				return b, fmt.Errorf("%w: cell value %d", ErrInvalidBoard, v)
			}
			b.cells[row][col] = Piece(v)
		}
	}
	if !b.checkGravity() {
		return Board{}, fmt.Errorf("%w: floating piece", ErrInvalidBoard)
	}
	return b, nil
}

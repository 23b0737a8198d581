package domain

// Board is the 6x7 grid. Row 0 is the bottom row, so a column fills
// from index 0 upward. Board is a plain value: assigning or passing it
// copies every cell, which is what the search relies on to keep
// sibling branches isolated.
type Board struct {
	cells [Rows][Columns]Piece
}

func NewBoard() Board {
	return Board{}
}

func inBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}

// Cell returns the piece at (row, column), or Empty when out of bounds.
func (b *Board) Cell(row, column int) Piece {
	if !inBounds(row, column) {
		return Empty
	}
	return b.cells[row][column]
}

// IsLegal reports whether a piece can be dropped in column.
func (b *Board) IsLegal(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return b.cells[Rows-1][column] == Empty
}

// NextOpenRow returns the lowest empty row of column. Calling it on a
// full column is a caller bug and reported as ErrColumnFull.
func (b *Board) NextOpenRow(column int) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrColumnOutOfRange
	}
	for row := 0; row < Rows; row++ {
		if b.cells[row][column] == Empty {
			return row, nil
		}
	}
	return -1, ErrColumnFull
}

// Drop returns a copy of the board with piece placed in column, and the
// row it landed on. The receiver is left untouched.
func (b Board) Drop(column int, piece Piece) (Board, int, error) {
	row, err := b.Place(column, piece)
	if err != nil {
		return Board{}, -1, err
	}
	return b, row, nil
}

// Place drops piece into column in place.
func (b *Board) Place(column int, piece Piece) (int, error) {
	if !piece.Valid() {
		return -1, ErrInvalidPiece
	}
	row, err := b.NextOpenRow(column)
	if err != nil {
		return -1, err
	}
	b.cells[row][column] = piece
	return row, nil
}

// Retract removes the topmost piece of column, undoing the last Place
// made there.
func (b *Board) Retract(column int) error {
	if column < 0 || column >= Columns {
		return ErrColumnOutOfRange
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] != Empty {
			b.cells[row][column] = Empty
			return nil
		}
	}
	return ErrColumnEmpty
}

// LegalColumns lists playable columns in ascending order.
func (b *Board) LegalColumns() []int {
	legal := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsLegal(col) {
			legal = append(legal, col)
		}
	}
	return legal
}

func (b *Board) IsFull() bool {
	return len(b.LegalColumns()) == 0
}

// Count returns how many cells hold piece.
func (b *Board) Count(piece Piece) int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.cells[row][col] == piece {
				count++
			}
		}
	}
	return count
}

// CountInColumn returns how many cells of column hold piece.
func (b *Board) CountInColumn(column int, piece Piece) int {
	count := 0
	for row := 0; row < Rows; row++ {
		if b.Cell(row, column) == piece {
			count++
		}
	}
	return count
}

// checkGravity verifies no column has an empty cell beneath a piece.
func (b *Board) checkGravity() bool {
	for col := 0; col < Columns; col++ {
		seenEmpty := false
		for row := 0; row < Rows; row++ {
			if b.cells[row][col] == Empty {
				seenEmpty = true
			} else if seenEmpty {
				return false
			}
		}
	}
	return true
}

package domain

// Window is a run of WindowLength contiguous cells along one direction.
type Window [WindowLength]Piece

// Count returns how many cells of the window hold piece.
func (w Window) Count(piece Piece) int {
	count := 0
	for _, p := range w {
		if p == piece {
			count++
		}
	}
	return count
}

// EachWindow calls fn for every window on the board: horizontal,
// vertical, rising diagonal and falling diagonal, in that order.
// Enumeration stops early when fn returns false; the return value
// reports whether it ran to completion.
func (b *Board) EachWindow(fn func(Window) bool) bool {
	var w Window

	// horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Columns-WindowLength; col++ {
			for i := range w {
				w[i] = b.cells[row][col+i]
			}
			if !fn(w) {
				return false
			}
		}
	}

	// vertical
	for col := 0; col < Columns; col++ {
		for row := 0; row <= Rows-WindowLength; row++ {
			for i := range w {
				w[i] = b.cells[row+i][col]
			}
			if !fn(w) {
				return false
			}
		}
	}

	// rising diagonal, anchored at its lowest cell
	for row := 0; row <= Rows-WindowLength; row++ {
		for col := 0; col <= Columns-WindowLength; col++ {
			for i := range w {
				w[i] = b.cells[row+i][col+i]
			}
			if !fn(w) {
				return false
			}
		}
	}

	// falling diagonal, same anchors walked from the top-left cell down
	for row := 0; row <= Rows-WindowLength; row++ {
		for col := 0; col <= Columns-WindowLength; col++ {
			for i := range w {
				w[i] = b.cells[row+WindowLength-1-i][col+i]
			}
			if !fn(w) {
				return false
			}
		}
	}

	return true
}

// HasFourInRow reports whether piece owns any complete window.
func HasFourInRow(b *Board, piece Piece) bool {
	if !piece.Valid() {
		return false
	}
	found := false
	b.EachWindow(func(w Window) bool {
		if w.Count(piece) == WindowLength {
			found = true
			return false
		}
		return true
	})
	return found
}

// Winner returns the piece that has four in a row, if any. A legal game
// can never have both, so the engine is reported first only for
// hand-built positions.
func Winner(b *Board) (Piece, bool) {
	if HasFourInRow(b, EnginePiece) {
		return EnginePiece, true
	}
	if HasFourInRow(b, PlayerPiece) {
		return PlayerPiece, true
	}
	return Empty, false
}

// Status classifies a position as won, drawn or still in progress.
func Status(b *Board) (GameStatus, Piece) {
	if winner, ok := Winner(b); ok {
		return StatusWon, winner
	}
	if b.IsFull() {
		return StatusDraw, Empty
	}
	return StatusActive, Empty
}

package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestEmptyBoardAllColumnsLegal(t *testing.T) {
	b := NewBoard()
	legal := b.LegalColumns()
	if len(legal) != Columns {
		t.Fatalf("expected %d legal columns, got %v", Columns, legal)
	}
	for i, col := range legal {
		if col != i {
			t.Fatalf("expected ascending columns, got %v", legal)
		}
	}
	if b.IsFull() {
		t.Fatalf("empty board reported full")
	}
}

func TestIsLegalRejectsOutOfRange(t *testing.T) {
	b := NewBoard()
	for _, col := range []int{-1, Columns, 100} {
		if b.IsLegal(col) {
			t.Fatalf("column %d should not be legal", col)
		}
	}
}

func TestDropStacksFromBottom(t *testing.T) {
	b := NewBoard()
	for want := 0; want < Rows; want++ {
		next, row, err := b.Drop(2, PlayerPiece)
		if err != nil {
			t.Fatalf("drop %d: %v", want, err)
		}
		if row != want {
			t.Fatalf("expected row %d, got %d", want, row)
		}
		b = next
	}
	if b.IsLegal(2) {
		t.Fatalf("column 2 should be full after %d drops", Rows)
	}
	if _, err := b.NextOpenRow(2); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if _, _, err := b.Drop(2, EnginePiece); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull on drop, got %v", err)
	}
}

func TestDropLeavesReceiverUntouched(t *testing.T) {
	b := NewBoard()
	next, _, err := b.Drop(3, EnginePiece)
	if err != nil {
		t.Fatalf("drop: %v", err)
	}
	if b.Count(EnginePiece) != 0 {
		t.Fatalf("original board was mutated")
	}
	if next.Cell(0, 3) != EnginePiece {
		t.Fatalf("expected engine piece at (0,3), got %v", next.Cell(0, 3))
	}
}

func TestDropRejectsEmptyPiece(t *testing.T) {
	b := NewBoard()
	if _, _, err := b.Drop(0, Empty); !errors.Is(err, ErrInvalidPiece) {
		t.Fatalf("expected ErrInvalidPiece, got %v", err)
	}
	if _, err := b.NextOpenRow(-1); !errors.Is(err, ErrColumnOutOfRange) {
		t.Fatalf("expected ErrColumnOutOfRange, got %v", err)
	}
}

func TestPlaceRetractRestoresBoard(t *testing.T) {
	b := MustParseBoard(
		"..XO...",
		".OXOX..",
	)
	before := b
	if _, err := b.Place(3, PlayerPiece); err != nil {
		t.Fatalf("place: %v", err)
	}
	if b == before {
		t.Fatalf("place did not change the board")
	}
	if err := b.Retract(3); err != nil {
		t.Fatalf("retract: %v", err)
	}
	if b != before {
		t.Fatalf("retract did not restore the board:\n%s\nwant\n%s", b, before)
	}
	if err := b.Retract(6); !errors.Is(err, ErrColumnEmpty) {
		t.Fatalf("expected ErrColumnEmpty, got %v", err)
	}
}

func TestRandomDropsKeepGravity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 50; game++ {
		b := NewBoard()
		piece := PlayerPiece
		for !b.IsFull() {
			legal := b.LegalColumns()
			col := legal[rng.Intn(len(legal))]
			next, _, err := b.Drop(col, piece)
			if err != nil {
				t.Fatalf("drop in legal column %d: %v", col, err)
			}
			if !next.checkGravity() {
				t.Fatalf("gravity broken after drop in %d:\n%s", col, next)
			}
			b = next
			piece = piece.Opponent()
		}
		if len(b.LegalColumns()) != 0 || b.Count(Empty) != 0 {
			t.Fatalf("full board still has room:\n%s", b)
		}
	}
}

func TestParseBoardRejectsFloatingPiece(t *testing.T) {
	_, err := ParseBoard(
		"...X...",
		".......",
	)
	if !errors.Is(err, ErrInvalidBoard) {
		t.Fatalf("expected ErrInvalidBoard, got %v", err)
	}
}

func TestGridRoundTrip(t *testing.T) {
	b := MustParseBoard(
		"...O...",
		"..XOX..",
		"O.XXOX.",
	)
	grid := b.Grid()
	if grid[Rows-1][0] != int(EnginePiece) {
		t.Fatalf("expected bottom-left engine piece in last grid row, got %v", grid[Rows-1])
	}
	back, err := FromGrid(grid)
	if err != nil {
		t.Fatalf("from grid: %v", err)
	}
	if back != b {
		t.Fatalf("round trip mismatch:\n%s\nwant\n%s", back, b)
	}
}

func TestFromGridValidation(t *testing.T) {
	tests := []struct {
		name string
		grid [][]int
	}{
		{"too few rows", make([][]int, Rows-1)},
		{"bad value", func() [][]int {
			g := NewBoard().Grid()
			g[Rows-1][0] = 3
			return g
		}()},
		{"floating", func() [][]int {
			g := NewBoard().Grid()
			g[0][0] = 1
			return g
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromGrid(tt.grid); !errors.Is(err, ErrInvalidBoard) {
				t.Fatalf("expected ErrInvalidBoard, got %v", err)
			}
		})
	}
}

func TestKeyDistinguishesPositions(t *testing.T) {
	a := MustParseBoard("X......")
	b := MustParseBoard("O......")
	if a.Key() == b.Key() {
		t.Fatalf("expected different keys")
	}
	if len(a.Key()) != Rows*Columns {
		t.Fatalf("expected key of length %d, got %d", Rows*Columns, len(a.Key()))
	}
}

func TestGridOfUnboundBoard(t *testing.T) {
	grid := MustParseBoard("X.....O").Grid()
	if grid[Rows-1][0] != int(PlayerPiece) || grid[Rows-1][Columns-1] != int(EnginePiece) {
		t.Fatalf("bottom row not last in grid: %v", grid[Rows-1])
	}
	if grid[0][0] != int(Empty) {
		t.Fatalf("top row should be empty: %v", grid[0])
	}
}

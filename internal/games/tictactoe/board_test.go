package tictactoe

import (
	"errors"
	"testing"
)

func TestPlaceAndAt(t *testing.T) {
	b := NewBoard(3)
	if err := b.Place(1, 2, 'X'); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if got := b.At(1, 2); got != 'X' {
		t.Errorf("At(1, 2) = %q, want 'X'", got)
	}
	if got := b.At(0, 0); got != Empty {
		t.Errorf("At(0, 0) = %q, want Empty", got)
	}
}

func TestPlaceOutOfBounds(t *testing.T) {
	b := NewBoard(3)
	cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}}
	for _, c := range cases {
		if err := b.Place(c[0], c[1], 'X'); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Place(%d, %d) = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
}

func TestPlaceOccupied(t *testing.T) {
	b := NewBoard(3)
	if err := b.Place(0, 0, 'X'); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if err := b.Place(0, 0, 'O'); !errors.Is(err, ErrOccupied) {
		t.Errorf("second Place() = %v, want ErrOccupied", err)
	}
	if got := b.At(0, 0); got != 'X' {
		t.Errorf("cell overwritten: At(0, 0) = %q, want 'X'", got)
	}
}

func TestBoardMinimumSize(t *testing.T) {
	if got := NewBoard(1).Size(); got != 2 {
		t.Errorf("NewBoard(1).Size() = %d, want 2", got)
	}
}

func TestWinForLines(t *testing.T) {
	fill := func(b *Board, cells [][2]int, symbol rune) {
		for _, c := range cells {
			if err := b.Place(c[0], c[1], symbol); err != nil {
				t.Fatalf("Place(%d, %d) failed: %v", c[0], c[1], err)
			}
		}
	}

	cases := []struct {
		name  string
		size  int
		cells [][2]int
	}{
		{"row", 3, [][2]int{{1, 0}, {1, 1}, {1, 2}}},
		{"column", 3, [][2]int{{0, 2}, {1, 2}, {2, 2}}},
		{"diagonal", 3, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"anti-diagonal", 3, [][2]int{{0, 2}, {1, 1}, {2, 0}}},
		{"row 4x4", 4, [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{"anti-diagonal 4x4", 4, [][2]int{{0, 3}, {1, 2}, {2, 1}, {3, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(tc.size)
			fill(b, tc.cells, 'X')
			if !b.WinFor('X') {
				t.Error("WinFor('X') = false, want true")
			}
			if b.WinFor('O') {
				t.Error("WinFor('O') = true, want false")
			}
		})
	}
}

func TestWinForPartialLine(t *testing.T) {
	b := NewBoard(3)
	b.Place(0, 0, 'X')
	b.Place(1, 1, 'X')
	if b.WinFor('X') {
		t.Error("two in a row should not win on a 3×3 board")
	}
}

func TestIsFull(t *testing.T) {
	b := NewBoard(2)
	symbols := []rune{'X', 'O', 'O', 'X'}
	i := 0
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if b.IsFull() {
				t.Fatal("IsFull() = true before the last placement")
			}
			if err := b.Place(row, col, symbols[i]); err != nil {
				t.Fatalf("Place() failed: %v", err)
			}
			i++
		}
	}
	if !b.IsFull() {
		t.Error("IsFull() = false after filling every cell")
	}
}

// Package tictactoe implements generalized N×N Tic-Tac-Toe for two or more
// players with arbitrary single-rune symbols.
package tictactoe

import "errors"

// Empty is the rune stored in an unclaimed cell.
const Empty = ' '

// Move validation errors, recovered locally by the setup layer.
var (
	ErrOutOfBounds = errors.New("tictactoe: position out of range")
	ErrOccupied    = errors.New("tictactoe: cell already occupied")
)

// Board is an N×N grid of player symbols.
type Board struct {
	size  int
	cells []rune
}

// NewBoard creates an empty size×size board. Sizes below 2 are raised to 2.
func NewBoard(size int) *Board {
	if size < 2 {
		size = 2
	}
	cells := make([]rune, size*size)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{size: size, cells: cells}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// At returns the symbol at (row, col), or Empty outside the board.
func (b *Board) At(row, col int) rune {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.size+col]
}

// Place claims the cell at (row, col) for the given symbol.
func (b *Board) Place(row, col int, symbol rune) error {
	if !b.inBounds(row, col) {
		return ErrOutOfBounds
	}
	if b.cells[row*b.size+col] != Empty {
		return ErrOccupied
	}
	b.cells[row*b.size+col] = symbol
	return nil
}

// IsFull reports whether every cell is claimed.
func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// WinFor reports whether the symbol owns a complete row, column or
// diagonal.
func (b *Board) WinFor(symbol rune) bool {
	n := b.size

	for row := 0; row < n; row++ {
		if b.lineIs(symbol, func(i int) (int, int) { return row, i }) {
			return true
		}
	}
	for col := 0; col < n; col++ {
		if b.lineIs(symbol, func(i int) (int, int) { return i, col }) {
			return true
		}
	}
	if b.lineIs(symbol, func(i int) (int, int) { return i, i }) {
		return true
	}
	return b.lineIs(symbol, func(i int) (int, int) { return i, n - 1 - i })
}

// lineIs checks one full-length line described by an index mapping.
func (b *Board) lineIs(symbol rune, at func(i int) (row, col int)) bool {
	for i := 0; i < b.size; i++ {
		row, col := at(i)
		if b.At(row, col) != symbol {
			return false
		}
	}
	return true
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

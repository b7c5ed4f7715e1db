package snakeladder

// ClassicDim is the dimension of the standard board.
const ClassicDim = 10

// ClassicTarget is the winning cell of the standard board.
const ClassicTarget = ClassicDim * ClassicDim

// ClassicBoard returns the standard 10×10 board layout (popular variant).
// Note the standard layout predates the generator's minimum-reach rule, so
// it is not required to pass Validate; it is cycle-free by inspection.
func ClassicBoard() LinkTable {
	return LinkTable{
		Ladders: map[int]int{
			2: 38, 7: 14, 8: 31, 15: 26, 21: 42,
			28: 84, 36: 44, 51: 67, 71: 91, 78: 98,
		},
		Snakes: map[int]int{
			16: 6, 46: 25, 49: 11, 62: 19, 64: 60,
			74: 53, 89: 68, 92: 88, 95: 75, 99: 80,
		},
	}
}

// DefaultAvoid returns the avoid set for a freshly generated board: the
// first and last cells plus a small margin next to each, so links never
// crowd the entry or the finish.
func DefaultAvoid(target int) map[int]bool {
	return map[int]bool{
		1:          true,
		2:          true,
		3:          true,
		target - 2: true,
		target - 1: true,
		target:     true,
	}
}

// DefaultLinkCount is the count heuristic used when the caller does not ask
// for a specific number of snakes or ladders on an n-dimension board.
func DefaultLinkCount(n int) int {
	if n > 5 {
		return n
	}
	return 5
}

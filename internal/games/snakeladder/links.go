// Package snakeladder implements the Snake & Ladder board games: a link
// table generator with constrained random placement, a turn resolver with
// overshoot and cascade policies, and the session driving player turns.
package snakeladder

import (
	"fmt"
	"sort"
)

// LinkKind distinguishes the two link directions on the board.
type LinkKind int

const (
	LinkLadder LinkKind = iota
	LinkSnake
)

// String returns a human-readable name for the link kind.
func (k LinkKind) String() string {
	if k == LinkLadder {
		return "ladder"
	}
	return "snake"
}

// LinkTable holds the snake and ladder mappings for one board.
// Keys are start cells, values are end cells. The table is built once at
// session setup and read-only afterwards.
type LinkTable struct {
	Ladders map[int]int
	Snakes  map[int]int
}

// NewLinkTable returns an empty table with allocated maps.
func NewLinkTable() LinkTable {
	return LinkTable{
		Ladders: make(map[int]int),
		Snakes:  make(map[int]int),
	}
}

// Lookup reports the link starting at pos, if any.
func (t LinkTable) Lookup(pos int) (end int, kind LinkKind, ok bool) {
	if end, ok := t.Ladders[pos]; ok {
		return end, LinkLadder, true
	}
	if end, ok := t.Snakes[pos]; ok {
		return end, LinkSnake, true
	}
	return 0, 0, false
}

// Len returns the total number of links in the table.
func (t LinkTable) Len() int {
	return len(t.Ladders) + len(t.Snakes)
}

// SortedLadders returns ladder start cells in ascending order.
func (t LinkTable) SortedLadders() []int {
	return sortedKeys(t.Ladders)
}

// SortedSnakes returns snake start cells in ascending order.
func (t LinkTable) SortedSnakes() []int {
	return sortedKeys(t.Snakes)
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// MinReach is the minimum |end-start| distance a link must span on an
// n-dimension board, so that no link is a trivial one-cell hop.
func MinReach(n int) int {
	if n/2 > 2 {
		return n / 2
	}
	return 2
}

// Validate checks every structural invariant of a generated table against a
// board with the given target cell and dimension:
//
//   - every endpoint lies inside [2, target-1]
//   - ladders go up, snakes go down
//   - every link spans at least MinReach(dim)
//   - no cell serves as more than one endpoint across both tables, so no
//     pair chains into another at generation time
//
// Used by tests and when loading hand-written boards from config.
func (t LinkTable) Validate(target, dim int) error {
	reach := MinReach(dim)
	seen := make(map[int]bool, 2*t.Len())

	claim := func(cell int) error {
		if seen[cell] {
			return fmt.Errorf("cell %d used by more than one link endpoint", cell)
		}
		seen[cell] = true
		return nil
	}

	for start, end := range t.Ladders {
		if err := checkBounds(start, end, target); err != nil {
			return fmt.Errorf("snakeladder: ladder %d->%d: %w", start, end, err)
		}
		if end <= start {
			return fmt.Errorf("snakeladder: ladder %d->%d does not go up", start, end)
		}
		if end-start < reach {
			return fmt.Errorf("snakeladder: ladder %d->%d spans less than %d", start, end, reach)
		}
		if err := claim(start); err != nil {
			return fmt.Errorf("snakeladder: %w", err)
		}
		if err := claim(end); err != nil {
			return fmt.Errorf("snakeladder: %w", err)
		}
	}

	for start, end := range t.Snakes {
		if err := checkBounds(start, end, target); err != nil {
			return fmt.Errorf("snakeladder: snake %d->%d: %w", start, end, err)
		}
		if end >= start {
			return fmt.Errorf("snakeladder: snake %d->%d does not go down", start, end)
		}
		if start-end < reach {
			return fmt.Errorf("snakeladder: snake %d->%d spans less than %d", start, end, reach)
		}
		if err := claim(start); err != nil {
			return fmt.Errorf("snakeladder: %w", err)
		}
		if err := claim(end); err != nil {
			return fmt.Errorf("snakeladder: %w", err)
		}
	}

	return nil
}

func checkBounds(start, end, target int) error {
	if start < 2 || start > target-1 {
		return fmt.Errorf("start %d outside [2, %d]", start, target-1)
	}
	if end < 2 || end > target-1 {
		return fmt.Errorf("end %d outside [2, %d]", end, target-1)
	}
	return nil
}

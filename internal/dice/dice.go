// Package dice provides the seedable randomness abstraction used by the
// turn-based games. Sessions receive an injected Source instead of touching
// process-wide random state, so every game is reproducible from a seed.
package dice

import (
	"math/rand"
	"time"
)

// Source is the randomness provider for dice rolls and board generation.
type Source interface {
	// Intn returns a non-negative random int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewSource returns a rand-based Source for the given seed.
// A zero seed falls back to the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Dice is an s-sided die bound to a Source.
type Dice struct {
	sides int
	src   Source
}

// New creates a die with the given number of sides. Sides below 2 are
// raised to 2 so a roll always has at least two outcomes.
func New(sides int, src Source) *Dice {
	if sides < 2 {
		sides = 2
	}
	return &Dice{sides: sides, src: src}
}

// Sides returns the number of faces on the die.
func (d *Dice) Sides() int {
	return d.sides
}

// Roll returns a uniform value in [1, sides].
func (d *Dice) Roll() int {
	return d.src.Intn(d.sides) + 1
}

// Package core provides fundamental types shared by the tabletop platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"io"
	"os"
)

// RunOptions contains configuration passed to a game runner at start.
// The platform fills it from CLI flags; games read setup overrides from In
// and write narration to Out.
type RunOptions struct {
	In  io.Reader // Player input (usually os.Stdin)
	Out io.Writer // Narration output (usually os.Stdout)

	Seed       int64  // RNG seed for deterministic sessions (0 = time-based)
	ConfigPath string // Optional path to a custom game config YAML
	Assume     bool   // Accept defaults instead of prompting
	Width      int    // Terminal width in characters (0 = unknown)

	// Setup overrides from flags. Zero values mean "use config/prompt".
	BoardSize int
	Players   []string

	// Snake & Ladder specific overrides.
	SnakeCount  int
	LadderCount int
	DiceSides   int
	Overshoot   string // "stay" or "bounce"; empty = config default
	Cascade     bool
	CascadeSet  bool // True when --cascade was given explicitly
}

// DefaultRunOptions returns RunOptions wired to the standard streams.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		In:  os.Stdin,
		Out: os.Stdout,
	}
}

// Result summarizes a finished game session for display and persistence.
type Result struct {
	GameID  string
	Players []string
	Winner  string // Empty on a draw or an aborted session
	Turns   int    // Completed turns across all players
	Draw    bool
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

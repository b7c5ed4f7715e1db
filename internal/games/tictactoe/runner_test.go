package tictactoe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

func TestRunnerScriptedWin(t *testing.T) {
	// Default players are You (X) and Computer 1 (O). You takes the top
	// row; the opponent fills the middle. One row/col pair per turn.
	input := strings.Join([]string{
		"0", "0",
		"1", "0",
		"0", "1",
		"1", "1",
		"0", "2",
	}, "\n") + "\n"

	out := &bytes.Buffer{}
	opts := core.DefaultRunOptions()
	opts.In = strings.NewReader(input)
	opts.Out = out
	opts.Assume = true
	opts.BoardSize = 3

	res, err := (&Runner{}).Run(opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Winner != "You" {
		t.Errorf("Winner = %q, want %q", res.Winner, "You")
	}
	if res.Turns != 5 {
		t.Errorf("Turns = %d, want 5", res.Turns)
	}
	if res.Draw {
		t.Error("Draw = true on a won game")
	}
	if !strings.Contains(out.String(), "wins") {
		t.Error("output should announce the winner")
	}
}

func TestRunnerRejectsInvalidMoves(t *testing.T) {
	// The first move is repeated by the opponent (occupied) and then an
	// off-board move follows; both are rejected without consuming a turn
	// before the game plays out to a win.
	input := strings.Join([]string{
		"0", "0", // You
		"0", "0", // occupied, retry
		"9", "9", // out of range, retry
		"1", "0", // Computer 1
		"0", "1", // You
		"1", "1", // Computer 1
		"0", "2", // You wins
	}, "\n") + "\n"

	out := &bytes.Buffer{}
	opts := core.DefaultRunOptions()
	opts.In = strings.NewReader(input)
	opts.Out = out
	opts.Assume = true
	opts.BoardSize = 3

	res, err := (&Runner{}).Run(opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Winner != "You" {
		t.Errorf("Winner = %q, want %q", res.Winner, "You")
	}
	if res.Turns != 5 {
		t.Errorf("Turns = %d, want 5 accepted moves", res.Turns)
	}
	text := out.String()
	if !strings.Contains(text, "occupied") {
		t.Error("output should mention the occupied cell")
	}
	if !strings.Contains(text, "out of range") {
		t.Error("output should mention the out-of-range move")
	}
}

func TestRunnerScriptedDraw(t *testing.T) {
	input := strings.Join([]string{
		"0", "0",
		"0", "1",
		"0", "2",
		"1", "1",
		"1", "0",
		"1", "2",
		"2", "1",
		"2", "0",
		"2", "2",
	}, "\n") + "\n"

	out := &bytes.Buffer{}
	opts := core.DefaultRunOptions()
	opts.In = strings.NewReader(input)
	opts.Out = out
	opts.Assume = true
	opts.BoardSize = 3

	res, err := (&Runner{}).Run(opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Draw {
		t.Error("expected a draw")
	}
	if res.Winner != "" {
		t.Errorf("Winner = %q, want empty on a draw", res.Winner)
	}
	if !strings.Contains(out.String(), "draw") {
		t.Error("output should announce the draw")
	}
}

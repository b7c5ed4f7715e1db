package snakeladder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

func autoplayOptions(seed int64) core.RunOptions {
	opts := core.DefaultRunOptions()
	opts.In = strings.NewReader("")
	opts.Out = &bytes.Buffer{}
	opts.Seed = seed
	opts.Assume = true
	opts.Players = []string{"Computer 1", "Computer 2"}
	return opts
}

func TestRunnerAutoplayFinishes(t *testing.T) {
	r := &Runner{id: "snakes", title: "Snake & Ladder (N×N)"}

	opts := autoplayOptions(42)
	opts.BoardSize = 6

	res, err := r.Run(opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Winner == "" {
		t.Error("expected a winner from an autoplayed game")
	}
	if res.Turns == 0 {
		t.Error("expected a positive turn count")
	}
	if len(res.Players) != 2 {
		t.Errorf("got %d players in the result, want 2", len(res.Players))
	}
}

func TestRunnerAutoplayDeterministic(t *testing.T) {
	play := func() core.Result {
		r := &Runner{id: "snakes", title: "Snake & Ladder (N×N)"}
		opts := autoplayOptions(7)
		opts.BoardSize = 5
		res, err := r.Run(opts)
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return res
	}

	first, second := play(), play()
	if first.Winner != second.Winner || first.Turns != second.Turns {
		t.Errorf("same seed produced different games: %+v vs %+v", first, second)
	}
}

func TestRunnerClassicAutoplay(t *testing.T) {
	r := &Runner{id: "snakes-classic", title: "Snake & Ladder (classic 10×10)", classic: true}

	out := &bytes.Buffer{}
	opts := autoplayOptions(3)
	opts.Out = out

	res, err := r.Run(opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Winner == "" {
		t.Error("expected a winner")
	}
	if !strings.Contains(out.String(), "Target: 100") {
		t.Error("classic game should announce the 10×10 target")
	}
}

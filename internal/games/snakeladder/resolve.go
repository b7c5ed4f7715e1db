package snakeladder

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

// ErrLinkCycle is returned when cascade resolution keeps following links
// past the table size. Tables built by Generate cannot cycle; this guard
// protects against hand-written boards that do.
var ErrLinkCycle = errors.New("snakeladder: link table contains a cycle")

// OvershootMode selects what happens when a roll would move past the target.
type OvershootMode int

const (
	// OvershootStay keeps the player in place; the move is not consumed.
	OvershootStay OvershootMode = iota
	// OvershootBounce reflects the excess back from the target.
	OvershootBounce
)

// String returns the mode's flag spelling.
func (m OvershootMode) String() string {
	if m == OvershootBounce {
		return "bounce"
	}
	return "stay"
}

// ParseOvershoot converts a flag/config value into an OvershootMode.
func ParseOvershoot(s string) (OvershootMode, error) {
	switch s {
	case "stay":
		return OvershootStay, nil
	case "bounce":
		return OvershootBounce, nil
	default:
		return OvershootStay, fmt.Errorf("snakeladder: unknown overshoot mode %q", s)
	}
}

// Rules are the move-resolution policies for one session.
type Rules struct {
	Target    int
	Overshoot OvershootMode
	Cascade   bool
}

// EventKind tags one transition in a resolved move.
type EventKind int

const (
	// EventMove is the plain die advance from the old position.
	EventMove EventKind = iota
	// EventStay means the roll overshot the target and was forfeited.
	EventStay
	// EventBounce means the roll reflected back from the target.
	EventBounce
	// EventLadder means the player climbed a ladder.
	EventLadder
	// EventSnake means the player slid down a snake.
	EventSnake
)

// Event records one position transition so the CLI layer can narrate the
// move without the resolver doing any I/O.
type Event struct {
	Kind EventKind
	From int
	To   int
}

// Outcome is the result of resolving a single turn.
type Outcome struct {
	NewPos   int
	Finished bool
	Events   []Event
}

// Resolve computes the position reached from pos after rolling roll.
//
// It applies the overshoot policy first: an exact landing on the target
// wins, a short landing advances, and an overshoot either forfeits the move
// (stay) or reflects the excess back from the target (bounce). A bounce
// that would reflect below cell 1 on a very small board is clamped to 1.
//
// The link policy then follows at most one link, or every link in turn when
// cascading is on. Cascading is capped at one step per link in the table;
// going past the cap means the table has a cycle and ErrLinkCycle is
// returned with the position reached so far.
func Resolve(pos, roll int, rules Rules, links LinkTable) (Outcome, error) {
	out := Outcome{NewPos: pos}

	cur := applyOvershoot(&out, pos, roll, rules)
	if cur == rules.Target {
		out.NewPos = cur
		out.Finished = true
		return out, nil
	}

	cur, err := applyLinks(&out, cur, rules.Cascade, links)
	out.NewPos = cur
	out.Finished = cur == rules.Target
	return out, err
}

// applyOvershoot runs step one of the pipeline and records its event.
func applyOvershoot(out *Outcome, pos, roll int, rules Rules) int {
	tentative := pos + roll

	switch {
	case tentative <= rules.Target:
		out.Events = append(out.Events, Event{Kind: EventMove, From: pos, To: tentative})
		return tentative
	case rules.Overshoot == OvershootStay:
		out.Events = append(out.Events, Event{Kind: EventStay, From: pos, To: pos})
		return pos
	default:
		bounced := core.Clamp(rules.Target-(tentative-rules.Target), 1, rules.Target)
		out.Events = append(out.Events, Event{Kind: EventBounce, From: pos, To: bounced})
		return bounced
	}
}

// applyLinks runs step two of the pipeline and records one event per link
// followed.
func applyLinks(out *Outcome, pos int, cascade bool, links LinkTable) (int, error) {
	// One step per link plus one is enough for any acyclic table.
	maxSteps := links.Len() + 1
	cur := pos

	for step := 0; ; step++ {
		end, kind, ok := links.Lookup(cur)
		if !ok {
			return cur, nil
		}
		if step >= maxSteps {
			return cur, ErrLinkCycle
		}

		ev := Event{From: cur, To: end, Kind: EventLadder}
		if kind == LinkSnake {
			ev.Kind = EventSnake
		}
		out.Events = append(out.Events, ev)
		cur = end

		if !cascade {
			return cur, nil
		}
	}
}

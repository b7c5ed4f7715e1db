package snakeladder

import (
	"github.com/vovakirdan/tui-tabletop/internal/core"
	"github.com/vovakirdan/tui-tabletop/internal/dice"
)

// DefaultMaxAttempts bounds the rejection-sampling loop for one placement.
const DefaultMaxAttempts = 5000

// GenSpec describes one board generation request.
type GenSpec struct {
	Target      int          // Winning cell, N*N for an N×N board
	Dim         int          // Board dimension N, sets the minimum link reach
	SnakeCount  int          // Requested number of snakes
	LadderCount int          // Requested number of ladders
	Avoid       map[int]bool // Cells that may never be a link endpoint
	MaxAttempts int          // Per-placement attempt budget (0 = default)
}

// GenOutcome reports how much of a generation request was satisfied.
type GenOutcome int

const (
	// OutcomeComplete means both quotas were fully placed.
	OutcomeComplete GenOutcome = iota
	// OutcomePartial means the attempt budget ran out before the quotas
	// were met; the table holds whatever was placed so far.
	OutcomePartial
)

// GenResult is the product of one generation run. Placed counts are
// reported explicitly so a shortfall is observable rather than silent.
type GenResult struct {
	Links         LinkTable
	Outcome       GenOutcome
	PlacedSnakes  int
	PlacedLadders int
}

// Shortfall reports how many requested links were not placed.
func (r GenResult) Shortfall(spec GenSpec) (snakes, ladders int) {
	return spec.SnakeCount - r.PlacedSnakes, spec.LadderCount - r.PlacedLadders
}

// generator carries the working state of one generation run.
type generator struct {
	spec       GenSpec
	rng        dice.Source
	links      LinkTable
	avoid      map[int]bool
	usedStarts map[int]bool
	usedEnds   map[int]bool
	reach      int
	budget     int
}

// Generate places snakes and ladders on the board by rejection sampling.
// Attempts alternate between one ladder and one snake (ladder first) until
// both quotas are met or a single placement exhausts its attempt budget,
// in which case generation stops early with a partial result.
//
// The produced table satisfies Validate for the requested target and
// dimension, and is acyclic: a ladder end is never a snake head and a
// snake tail is never a ladder start, so no landing cell chains forever.
func Generate(rng dice.Source, spec GenSpec) GenResult {
	g := &generator{
		spec:       spec,
		rng:        rng,
		links:      NewLinkTable(),
		avoid:      make(map[int]bool, len(spec.Avoid)+2),
		usedStarts: make(map[int]bool),
		usedEnds:   make(map[int]bool),
		reach:      MinReach(spec.Dim),
		budget:     spec.MaxAttempts,
	}
	if g.budget <= 0 {
		g.budget = DefaultMaxAttempts
	}
	for cell := range spec.Avoid {
		g.avoid[cell] = true
	}
	g.avoid[1] = true
	g.avoid[spec.Target] = true

	ladderQuota := spec.LadderCount
	snakeQuota := spec.SnakeCount
	wantLadder := true

	for ladderQuota > 0 || snakeQuota > 0 {
		switch {
		case wantLadder && ladderQuota > 0:
			if !g.place(LinkLadder) {
				return g.result(OutcomePartial)
			}
			ladderQuota--
		case !wantLadder && snakeQuota > 0:
			if !g.place(LinkSnake) {
				return g.result(OutcomePartial)
			}
			snakeQuota--
		}
		wantLadder = !wantLadder
	}

	return g.result(OutcomeComplete)
}

func (g *generator) result(outcome GenOutcome) GenResult {
	return GenResult{
		Links:         g.links,
		Outcome:       outcome,
		PlacedSnakes:  len(g.links.Snakes),
		PlacedLadders: len(g.links.Ladders),
	}
}

// place tries to add one link of the given kind, retrying up to the attempt
// budget. Returns false when no valid placement was found.
func (g *generator) place(kind LinkKind) bool {
	target := g.spec.Target

	for try := 0; try < g.budget; try++ {
		// Candidate start in [2, target-1]. A cell may hold one endpoint
		// role only, across both tables: starting a link on another link's
		// end (or vice versa) would chain pairs at generation time, and
		// chains are resolved only at move time by the cascade policy.
		start := 2 + g.rng.Intn(target-2)
		if g.avoid[start] || g.usedStarts[start] || g.usedEnds[start] {
			continue
		}

		var end int
		if kind == LinkLadder {
			if start+1 > target-1 {
				continue
			}
			end = start + 1 + g.rng.Intn(target-1-start)
		} else {
			if start-1 < 2 {
				continue
			}
			end = 2 + g.rng.Intn(start-2)
		}

		if g.avoid[end] || g.usedEnds[end] || g.usedStarts[end] {
			continue
		}
		if core.Abs(end-start) < g.reach {
			continue
		}

		if kind == LinkLadder {
			g.links.Ladders[start] = end
		} else {
			g.links.Snakes[start] = end
		}
		g.usedStarts[start] = true
		g.usedEnds[end] = true
		return true
	}

	return false
}

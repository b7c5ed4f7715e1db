package snakeladder

import (
	"testing"

	"github.com/vovakirdan/tui-tabletop/internal/dice"
)

func TestGenerateSatisfiesInvariants(t *testing.T) {
	dims := []int{6, 8, 10, 12, 16}
	seeds := []int64{1, 7, 42, 99, 12345}

	for _, dim := range dims {
		for _, seed := range seeds {
			target := dim * dim
			spec := GenSpec{
				Target:      target,
				Dim:         dim,
				SnakeCount:  DefaultLinkCount(dim),
				LadderCount: DefaultLinkCount(dim),
				Avoid:       DefaultAvoid(target),
			}
			res := Generate(dice.NewSource(seed), spec)

			if res.Outcome != OutcomeComplete {
				t.Errorf("dim=%d seed=%d: expected complete outcome, placed %d/%d snakes %d/%d ladders",
					dim, seed, res.PlacedSnakes, spec.SnakeCount, res.PlacedLadders, spec.LadderCount)
			}
			if res.PlacedSnakes != len(res.Links.Snakes) || res.PlacedLadders != len(res.Links.Ladders) {
				t.Errorf("dim=%d seed=%d: placed counts disagree with tables", dim, seed)
			}

			if err := res.Links.Validate(target, dim); err != nil {
				t.Errorf("dim=%d seed=%d: generated table invalid: %v", dim, seed, err)
			}

			checkDisjoint(t, res.Links, dim, seed)

			for cell := range spec.Avoid {
				if isEndpoint(res.Links, cell) {
					t.Errorf("dim=%d seed=%d: avoid cell %d used as a link endpoint", dim, seed, cell)
				}
			}
			if isEndpoint(res.Links, 1) || isEndpoint(res.Links, target) {
				t.Errorf("dim=%d seed=%d: boundary cell used as a link endpoint", dim, seed)
			}
		}
	}
}

// checkDisjoint verifies no key appears in both tables and no value of one
// table equals a key of the other.
func checkDisjoint(t *testing.T, links LinkTable, dim int, seed int64) {
	t.Helper()

	for start := range links.Ladders {
		if _, ok := links.Snakes[start]; ok {
			t.Errorf("dim=%d seed=%d: cell %d is both a ladder start and a snake head", dim, seed, start)
		}
	}
	for _, end := range links.Ladders {
		if _, ok := links.Snakes[end]; ok {
			t.Errorf("dim=%d seed=%d: ladder end %d is a snake head", dim, seed, end)
		}
	}
	for _, end := range links.Snakes {
		if _, ok := links.Ladders[end]; ok {
			t.Errorf("dim=%d seed=%d: snake tail %d is a ladder start", dim, seed, end)
		}
	}
}

func isEndpoint(links LinkTable, cell int) bool {
	if _, ok := links.Ladders[cell]; ok {
		return true
	}
	if _, ok := links.Snakes[cell]; ok {
		return true
	}
	for _, end := range links.Ladders {
		if end == cell {
			return true
		}
	}
	for _, end := range links.Snakes {
		if end == cell {
			return true
		}
	}
	return false
}

func TestGenerateDeterminism(t *testing.T) {
	spec := GenSpec{
		Target:      100,
		Dim:         10,
		SnakeCount:  10,
		LadderCount: 10,
		Avoid:       DefaultAvoid(100),
	}

	r1 := Generate(dice.NewSource(777), spec)
	r2 := Generate(dice.NewSource(777), spec)

	if len(r1.Links.Ladders) != len(r2.Links.Ladders) || len(r1.Links.Snakes) != len(r2.Links.Snakes) {
		t.Fatal("same seed should produce identical table sizes")
	}
	for start, end := range r1.Links.Ladders {
		if r2.Links.Ladders[start] != end {
			t.Errorf("ladder %d->%d missing from second run", start, end)
		}
	}
	for start, end := range r1.Links.Snakes {
		if r2.Links.Snakes[start] != end {
			t.Errorf("snake %d->%d missing from second run", start, end)
		}
	}
}

func TestGenerateShortfallIsObservable(t *testing.T) {
	// A 3x3 board cannot hold 20 snakes and 20 ladders: each link consumes
	// two cells out of the seven legal ones.
	spec := GenSpec{
		Target:      9,
		Dim:         3,
		SnakeCount:  20,
		LadderCount: 20,
		MaxAttempts: 200,
	}
	res := Generate(dice.NewSource(5), spec)

	if res.Outcome != OutcomePartial {
		t.Fatalf("expected partial outcome, got %v", res.Outcome)
	}
	missSnakes, missLadders := res.Shortfall(spec)
	if missSnakes <= 0 && missLadders <= 0 {
		t.Errorf("expected a reported shortfall, got snakes=%d ladders=%d", missSnakes, missLadders)
	}
	if res.PlacedSnakes != len(res.Links.Snakes) || res.PlacedLadders != len(res.Links.Ladders) {
		t.Error("partial result must still report accurate placed counts")
	}
	// Whatever was placed still has to honor the invariants.
	if err := res.Links.Validate(9, 3); err != nil {
		t.Errorf("partial table invalid: %v", err)
	}
}

func TestGenerateZeroCounts(t *testing.T) {
	res := Generate(dice.NewSource(1), GenSpec{Target: 100, Dim: 10})
	if res.Outcome != OutcomeComplete {
		t.Errorf("zero quotas should be trivially complete, got %v", res.Outcome)
	}
	if res.Links.Len() != 0 {
		t.Errorf("expected empty table, got %d links", res.Links.Len())
	}
}

func TestGenerateLadderFirstAlternation(t *testing.T) {
	// With a quota of one each, the ladder is placed first; if the board is
	// too tight for the snake afterwards, the ladder must survive.
	spec := GenSpec{
		Target:      16,
		Dim:         4,
		SnakeCount:  1,
		LadderCount: 1,
	}
	res := Generate(dice.NewSource(3), spec)

	if res.PlacedLadders != 1 {
		t.Fatalf("expected the ladder quota met, placed %d", res.PlacedLadders)
	}
}

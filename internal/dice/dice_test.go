package dice

import "testing"

func TestRollRange(t *testing.T) {
	src := NewSource(42)
	d := New(6, src)

	for i := 0; i < 1000; i++ {
		v := d.Roll()
		if v < 1 || v > 6 {
			t.Fatalf("Roll() = %d, want value in [1, 6]", v)
		}
	}
}

func TestRollDeterminism(t *testing.T) {
	d1 := New(20, NewSource(99))
	d2 := New(20, NewSource(99))

	for i := 0; i < 50; i++ {
		v1, v2 := d1.Roll(), d2.Roll()
		if v1 != v2 {
			t.Fatalf("roll %d: %d vs %d, same seed should match", i, v1, v2)
		}
	}
}

func TestMinimumSides(t *testing.T) {
	d := New(0, NewSource(1))
	if d.Sides() != 2 {
		t.Errorf("Sides() = %d, want 2 for degenerate input", d.Sides())
	}
}

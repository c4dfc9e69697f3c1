package kociemba

import "testing"

func TestSolvedIsIdentity(t *testing.T) {
	s := Solved()
	if s.Multiply(s) != s.Multiply(Solved()) {
		t.Fatal("Solved() is not idempotent under Multiply with itself")
	}
	if s.cornerOrientationSum()%3 != 0 {
		t.Error("solved corner orientation sum not ≡ 0 mod 3")
	}
	if s.edgeOrientationSum()%2 != 0 {
		t.Error("solved edge orientation sum not ≡ 0 mod 2")
	}
	if s.cornerPermParity() != s.edgePermParity() {
		t.Error("solved corner/edge parity mismatch")
	}
}

// TestBaseMovesAreLegal checks the invariant that every one of the 18
// generated move cubes, applied to the solved cube, still satisfies
// the three legality invariants from spec.md §8.
func TestBaseMovesAreLegal(t *testing.T) {
	for m := 0; m < numMoves; m++ {
		a, p := moveAxisPower(m)
		c := Solved().ApplyMove(a, p)
		if c.cornerOrientationSum()%3 != 0 {
			t.Errorf("move %v%v: corner orientation sum not ≡ 0 mod 3", a, p)
		}
		if c.edgeOrientationSum()%2 != 0 {
			t.Errorf("move %v%v: edge orientation sum not ≡ 0 mod 2", a, p)
		}
		if c.cornerPermParity() != c.edgePermParity() {
			t.Errorf("move %v%v: corner/edge parity mismatch", a, p)
		}
	}
}

// TestQuarterTurnOrderFour verifies a quarter turn applied four times
// returns to solved, per spec.md §8's boundary behaviour.
func TestQuarterTurnOrderFour(t *testing.T) {
	for a := Axis(0); a < 6; a++ {
		c := Solved()
		for i := 0; i < 4; i++ {
			c = c.ApplyMove(a, Quarter)
		}
		if c != Solved() {
			t.Errorf("applying %v four times did not return to solved", a)
		}
	}
}

// TestHalfTurnOrderTwo checks the companion property for double turns.
func TestHalfTurnOrderTwo(t *testing.T) {
	for a := Axis(0); a < 6; a++ {
		c := Solved().ApplyMove(a, Half).ApplyMove(a, Half)
		if c != Solved() {
			t.Errorf("applying %v2 twice did not return to solved", a)
		}
	}
}

// TestMoveThenInverseRoundTrip covers spec.md §8's round-trip property:
// applying a move then its inverse returns the original state exactly.
func TestMoveThenInverseRoundTrip(t *testing.T) {
	start := Solved().ApplyMove(AxisR, Quarter).ApplyMove(AxisU, CounterQuarter).ApplyMove(AxisF, Half)

	inversePower := map[Power]Power{Quarter: CounterQuarter, CounterQuarter: Quarter, Half: Half}
	moves := []struct {
		a Axis
		p Power
	}{{AxisR, Quarter}, {AxisU, CounterQuarter}, {AxisF, Half}}

	c := start
	for i := len(moves) - 1; i >= 0; i-- {
		c = c.ApplyMove(moves[i].a, inversePower[moves[i].p])
	}
	if c != Solved() {
		t.Error("applying the inverse sequence in reverse order did not restore solved")
	}
}

func TestCubieInverse(t *testing.T) {
	c := Solved().ApplyMove(AxisR, Quarter).ApplyMove(AxisU, Half).ApplyMove(AxisB, CounterQuarter)
	inv := c.Inverse()
	if c.Multiply(inv) != Solved() {
		t.Error("c.Multiply(c.Inverse()) != Solved()")
	}
	if inv.Multiply(c) != Solved() {
		t.Error("c.Inverse().Multiply(c) != Solved()")
	}
}

func TestPermutationParity(t *testing.T) {
	// A single transposition has odd parity; identity has even parity.
	identity := []int{0, 1, 2, 3}
	if permutationParity(identity) != 0 {
		t.Errorf("identity permutation parity = %d, want 0", permutationParity(identity))
	}
	swapped := []int{1, 0, 2, 3}
	if permutationParity(swapped) != 1 {
		t.Errorf("single-swap permutation parity = %d, want 1", permutationParity(swapped))
	}
}

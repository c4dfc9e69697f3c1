package kociemba

import (
	"sync"
	"testing"
)

// Building the full table set is the expensive part of these tests;
// share one instance across the whole file rather than rebuilding it
// per test.
var (
	solveTestTablesOnce sync.Once
	solveTestTables     *Tables
)

func testTables() *Tables {
	solveTestTablesOnce.Do(func() {
		solveTestTables = BuildTables()
	})
	return solveTestTables
}

func applyAll(c Cubie, moves []Move) Cubie {
	for _, m := range moves {
		c = c.ApplyMove(m.Axis, m.Power)
	}
	return c
}

func TestSolveSolvedCubeReturnsEmpty(t *testing.T) {
	moves, err := Solve(solvedFacelets, testTables(), 0)
	if err != nil {
		t.Fatalf("Solve(solved) error = %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("Solve(solved) = %v, want empty", moves)
	}
}

// TestSolveSingleMoveScramble covers spec.md §8's one-move scenario:
// a cube scrambled by a single R turn must come back solved in a
// single move (R', though we check by replay rather than assuming the
// exact notation the search happens to pick).
func TestSolveSingleMoveScramble(t *testing.T) {
	scrambled := Solved().ApplyMove(AxisR, Quarter)
	fc := FromCubie(scrambled)

	moves, err := Solve(fc.String(), testTables(), 0)
	if err != nil {
		t.Fatalf("Solve(R-scrambled) error = %v", err)
	}
	if len(moves) != 1 {
		t.Errorf("Solve(R-scrambled) = %d moves, want 1", len(moves))
	}
	if got := applyAll(scrambled, moves); got != Solved() {
		t.Error("replaying Solve(R-scrambled)'s moves did not return to solved")
	}
}

// TestSolveShortScramble covers the "R U R' U'" scenario: the optimal
// solution is at most 4 moves and must restore the solved state.
func TestSolveShortScramble(t *testing.T) {
	scrambled := Solved().
		ApplyMove(AxisR, Quarter).
		ApplyMove(AxisU, Quarter).
		ApplyMove(AxisR, CounterQuarter).
		ApplyMove(AxisU, CounterQuarter)
	fc := FromCubie(scrambled)

	moves, err := Solve(fc.String(), testTables(), 0)
	if err != nil {
		t.Fatalf("Solve(R U R' U'-scrambled) error = %v", err)
	}
	if len(moves) > 4 {
		t.Errorf("Solve(R U R' U'-scrambled) = %d moves, want <=4", len(moves))
	}
	if got := applyAll(scrambled, moves); got != Solved() {
		t.Error("replaying Solve(R U R' U'-scrambled)'s moves did not return to solved")
	}
}

// TestSolveDeepScramble covers spec.md §8's bound on total search
// depth: a scramble requiring many moves still resolves within
// defaultMaxDepth.
func TestSolveDeepScramble(t *testing.T) {
	scrambled := Solved().
		ApplyMove(AxisR, Quarter).ApplyMove(AxisU, Half).ApplyMove(AxisF, CounterQuarter).
		ApplyMove(AxisL, Quarter).ApplyMove(AxisB, Half).ApplyMove(AxisD, CounterQuarter).
		ApplyMove(AxisR, Half).ApplyMove(AxisU, Quarter).ApplyMove(AxisF, Half).
		ApplyMove(AxisL, CounterQuarter).ApplyMove(AxisB, Quarter).ApplyMove(AxisD, Half)
	fc := FromCubie(scrambled)

	moves, err := Solve(fc.String(), testTables(), 0)
	if err != nil {
		t.Fatalf("Solve(deep scramble) error = %v", err)
	}
	if len(moves) > defaultMaxDepth {
		t.Errorf("Solve(deep scramble) = %d moves, want <=%d", len(moves), defaultMaxDepth)
	}
	if got := applyAll(scrambled, moves); got != Solved() {
		t.Error("replaying Solve(deep scramble)'s moves did not return to solved")
	}
}

// TestSolveRejectsBadEdgeFlip covers spec.md §8: a cube with one edge
// flipped in place is detected by validation and never reaches search.
func TestSolveRejectsBadEdgeFlip(t *testing.T) {
	c := Solved()
	c.eo[0] = 1
	fc := FromCubie(c)

	_, err := Solve(fc.String(), testTables(), 0)
	if kind, ok := KindOf(err); !ok || kind != BadEdgeFlip {
		t.Errorf("Solve(bad edge flip) error = %v, want BadEdgeFlip", err)
	}
}

// TestSolveRejectsParityMismatch covers spec.md §8: a cube with two
// corners swapped (illegal physical parity) is rejected by validation.
func TestSolveRejectsParityMismatch(t *testing.T) {
	c := Solved()
	c.cp[0], c.cp[1] = c.cp[1], c.cp[0]
	fc := FromCubie(c)

	_, err := Solve(fc.String(), testTables(), 0)
	if kind, ok := KindOf(err); !ok || kind != ParityMismatch {
		t.Errorf("Solve(parity mismatch) error = %v, want ParityMismatch", err)
	}
}

func TestSolveCubieMatchesSolve(t *testing.T) {
	scrambled := Solved().ApplyMove(AxisF, Half).ApplyMove(AxisR, Quarter)
	fc := FromCubie(scrambled)

	viaFacelets, err := Solve(fc.String(), testTables(), 0)
	if err != nil {
		t.Fatalf("Solve error = %v", err)
	}
	viaCubie, err := SolveCubie(scrambled, testTables(), 0)
	if err != nil {
		t.Fatalf("SolveCubie error = %v", err)
	}
	if got := applyAll(scrambled, viaCubie); got != Solved() {
		t.Error("replaying SolveCubie's moves did not return to solved")
	}
	if len(viaFacelets) != len(viaCubie) {
		t.Errorf("Solve and SolveCubie found different-length solutions: %d vs %d", len(viaFacelets), len(viaCubie))
	}
}

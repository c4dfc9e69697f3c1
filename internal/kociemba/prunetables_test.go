package kociemba

import "testing"

func TestPruneTableGoalIsZero(t *testing.T) {
	twist := buildMoveTable(twistStates, SetTwist, Cubie.Twist)
	udslice := buildMoveTable(udsliceStates, SetUDSlice, Cubie.UDSlice)
	prune := buildPruneTable(udsliceStates, twistStates, udslice, twist, allMoves)

	if got := prune.Get(0, 0); got != 0 {
		t.Errorf("prune.Get(0,0) = %d, want 0", got)
	}
}

// TestPruneTableNeighborsWithinOne checks the BFS admissibility invariant:
// every cell reachable from (0,0) in one legal move has a bound at most
// one greater than (0,0)'s.
func TestPruneTableNeighborsWithinOne(t *testing.T) {
	twist := buildMoveTable(twistStates, SetTwist, Cubie.Twist)
	udslice := buildMoveTable(udsliceStates, SetUDSlice, Cubie.UDSlice)
	prune := buildPruneTable(udsliceStates, twistStates, udslice, twist, allMoves)

	for _, m := range allMoves {
		na := int(udslice[0][m])
		nb := int(twist[0][m])
		if got := prune.Get(na, nb); got > 1 {
			t.Errorf("prune.Get(%d,%d) (one move from goal) = %d, want <=1", na, nb, got)
		}
	}
}

// TestPruneTableMonotoneAlongMoves verifies that no neighbor's bound
// exceeds a cell's own bound by more than one, for a sample of cells.
func TestPruneTableMonotoneAlongMoves(t *testing.T) {
	twist := buildMoveTable(twistStates, SetTwist, Cubie.Twist)
	udslice := buildMoveTable(udsliceStates, SetUDSlice, Cubie.UDSlice)
	prune := buildPruneTable(udsliceStates, twistStates, udslice, twist, allMoves)

	for a := 0; a < udsliceStates; a += 97 {
		for b := 0; b < twistStates; b += 101 {
			d := prune.Get(a, b)
			for _, m := range allMoves {
				na := int(udslice[a][m])
				nb := int(twist[b][m])
				nd := prune.Get(na, nb)
				if nd > d+1 {
					t.Errorf("prune.Get(%d,%d)=%d but neighbor (%d,%d)=%d, diff > 1", a, b, d, na, nb, nd)
				}
			}
		}
	}
}

func TestPruneTableGetPanicsOnUnbuiltCell(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get on an unbuilt cell should panic")
		}
	}()
	p := newPruneTable(4, 4)
	p.Get(1, 1)
}

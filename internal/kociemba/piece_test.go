package kociemba

import "testing"

func TestMoveIndexRoundTrip(t *testing.T) {
	for a := Axis(0); a < 6; a++ {
		for _, p := range []Power{Quarter, Half, CounterQuarter} {
			m := moveIndex(a, p)
			if m < 0 || m >= numMoves {
				t.Fatalf("moveIndex(%v, %v) = %d out of range", a, p, m)
			}
			gotA, gotP := moveAxisPower(m)
			if gotA != a || gotP != p {
				t.Errorf("moveAxisPower(moveIndex(%v, %v)) = (%v, %v), want (%v, %v)", a, p, gotA, gotP, a, p)
			}
		}
	}
}

func TestPhase2Moves(t *testing.T) {
	if len(phase2Moves) != 10 {
		t.Fatalf("phase2Moves has %d entries, want 10", len(phase2Moves))
	}
	for _, m := range phase2Moves {
		if !isPhase2Move(m) {
			t.Errorf("isPhase2Move(%d) = false for a move in phase2Moves", m)
		}
		a, p := moveAxisPower(m)
		switch a {
		case AxisU, AxisD:
			// all three powers legal
		default:
			if p != Half {
				t.Errorf("phase-2 move on axis %v has power %v, want Half", a, p)
			}
		}
	}
	for m := 0; m < numMoves; m++ {
		a, p := moveAxisPower(m)
		want := a == AxisU || a == AxisD || p == Half
		if isPhase2Move(m) != want {
			t.Errorf("isPhase2Move(%d) = %v, want %v for axis %v power %v", m, isPhase2Move(m), want, a, p)
		}
	}
}

func TestAxisOpposite(t *testing.T) {
	pairs := map[Axis]Axis{AxisU: AxisD, AxisD: AxisU, AxisR: AxisL, AxisL: AxisR, AxisF: AxisB, AxisB: AxisF}
	for a, want := range pairs {
		if got := a.opposite(); got != want {
			t.Errorf("%v.opposite() = %v, want %v", a, got, want)
		}
	}
}

func TestIsSliceEdge(t *testing.T) {
	for e := Edge(0); e < numEdges; e++ {
		want := e >= FR
		if isSliceEdge(e) != want {
			t.Errorf("isSliceEdge(%d) = %v, want %v", e, isSliceEdge(e), want)
		}
	}
}

package kociemba

import "testing"

// TestMoveTableMatchesCubie checks that every move-table entry agrees
// with actually applying the move to a cubie and reading the
// coordinate back out, for a handful of coordinates per table.
func TestMoveTableMatchesCubie(t *testing.T) {
	twist := buildMoveTable(twistStates, SetTwist, Cubie.Twist)
	for v := 0; v < twistStates; v += 53 {
		base := SetTwist(v)
		for m := 0; m < numMoves; m++ {
			a, p := moveAxisPower(m)
			want := base.ApplyMove(a, p).Twist()
			if got := int(twist[v][m]); got != want {
				t.Errorf("twist[%d][%d] = %d, want %d", v, m, got, want)
			}
		}
	}

	udslice := buildMoveTable(udsliceStates, SetUDSlice, Cubie.UDSlice)
	for v := 0; v < udsliceStates; v++ {
		base := SetUDSlice(v)
		for m := 0; m < numMoves; m++ {
			a, p := moveAxisPower(m)
			want := base.ApplyMove(a, p).UDSlice()
			if got := int(udslice[v][m]); got != want {
				t.Errorf("udslice[%d][%d] = %d, want %d", v, m, got, want)
			}
		}
	}
}

func TestBuildTablesDimensions(t *testing.T) {
	tables := BuildTables()
	if len(tables.Twist) != twistStates {
		t.Errorf("len(Twist) = %d, want %d", len(tables.Twist), twistStates)
	}
	if len(tables.Flip) != flipStates {
		t.Errorf("len(Flip) = %d, want %d", len(tables.Flip), flipStates)
	}
	if len(tables.UDSlice) != udsliceStates {
		t.Errorf("len(UDSlice) = %d, want %d", len(tables.UDSlice), udsliceStates)
	}
	if len(tables.Edge4) != edge4States {
		t.Errorf("len(Edge4) = %d, want %d", len(tables.Edge4), edge4States)
	}
	if len(tables.Edge8) != edge8States {
		t.Errorf("len(Edge8) = %d, want %d", len(tables.Edge8), edge8States)
	}
	if len(tables.Corner) != cornerStates {
		t.Errorf("len(Corner) = %d, want %d", len(tables.Corner), cornerStates)
	}
}

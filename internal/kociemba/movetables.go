package kociemba

// MoveTable gives, for each value of one coordinate, the successor
// coordinate under each of the 18 moves. Phase-2-only coordinates
// still carry a full 18-wide row; the search simply never consults
// the phase-1-only entries (§4.4).
type MoveTable [][numMoves]uint16

func buildMoveTable(size int, setter func(int) Cubie, getter func(Cubie) int) MoveTable {
	table := make(MoveTable, size)
	for v := 0; v < size; v++ {
		base := setter(v)
		for m := 0; m < numMoves; m++ {
			a, p := moveAxisPower(m)
			table[v][m] = uint16(getter(base.ApplyMove(a, p)))
		}
	}
	return table
}

// Tables bundles all six move tables and the four pruning tables; it
// is immutable after construction and safe to share by reference
// across any number of concurrent solves (§5 "Shared resources").
type Tables struct {
	Twist   MoveTable
	Flip    MoveTable
	UDSlice MoveTable
	Edge4   MoveTable
	Edge8   MoveTable
	Corner  MoveTable

	UDSliceTwistPrune PruneTable
	UDSliceFlipPrune  PruneTable
	Edge4CornerPrune  PruneTable
	Edge4Edge8Prune   PruneTable
}

// BuildTables constructs the full table set from scratch. It is
// deterministic and completes before any solve (§5 "Resource
// acquisition").
func BuildTables() *Tables {
	t := &Tables{
		Twist:   buildMoveTable(twistStates, SetTwist, Cubie.Twist),
		Flip:    buildMoveTable(flipStates, SetFlip, Cubie.Flip),
		UDSlice: buildMoveTable(udsliceStates, SetUDSlice, Cubie.UDSlice),
		Edge4:   buildMoveTable(edge4States, SetEdge4, Cubie.Edge4),
		Edge8:   buildMoveTable(edge8States, SetEdge8, Cubie.Edge8),
		Corner:  buildMoveTable(cornerStates, SetCornerPerm, Cubie.CornerPerm),
	}
	t.UDSliceTwistPrune = buildPruneTable(udsliceStates, twistStates, t.UDSlice, t.Twist, allMoves)
	t.UDSliceFlipPrune = buildPruneTable(udsliceStates, flipStates, t.UDSlice, t.Flip, allMoves)
	t.Edge4CornerPrune = buildPruneTable(edge4States, cornerStates, t.Edge4, t.Corner, phase2Moves)
	t.Edge4Edge8Prune = buildPruneTable(edge4States, edge8States, t.Edge4, t.Edge8, phase2Moves)
	return t
}

var allMoves = func() []int {
	m := make([]int, numMoves)
	for i := range m {
		m[i] = i
	}
	return m
}()

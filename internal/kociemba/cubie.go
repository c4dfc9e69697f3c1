package kociemba

// Cubie is the permutation+orientation state of the whole cube: which
// physical corner/edge occupies each of the 8/12 slots, and how each
// piece is twisted or flipped in that slot.
type Cubie struct {
	cp [numCorners]Corner // cp[slot] = corner piece occupying slot
	co [numCorners]int    // co[slot] = 0,1,2
	ep [numEdges]Edge      // ep[slot] = edge piece occupying slot
	eo [numEdges]int       // eo[slot] = 0,1
}

// Solved returns the identity cube.
func Solved() Cubie {
	var c Cubie
	for i := 0; i < numCorners; i++ {
		c.cp[i] = Corner(i)
	}
	for i := 0; i < numEdges; i++ {
		c.ep[i] = Edge(i)
	}
	return c
}

// Multiply composes self with a: new_perm[i] = self.perm[a.perm[i]],
// i.e. the state self with a applied after it (ApplyMove relies on
// this to turn a move on top of the current state).
func (self Cubie) Multiply(a Cubie) Cubie {
	var r Cubie
	for i := 0; i < numCorners; i++ {
		r.cp[i] = self.cp[a.cp[i]]
		r.co[i] = (self.co[a.cp[i]] + a.co[i]) % 3
	}
	for i := 0; i < numEdges; i++ {
		r.ep[i] = self.ep[a.ep[i]]
		r.eo[i] = (self.eo[a.ep[i]] + a.eo[i]) % 2
	}
	return r
}

// Inverse returns the compositional inverse of c.
func (c Cubie) Inverse() Cubie {
	var r Cubie
	for i := 0; i < numCorners; i++ {
		r.cp[c.cp[i]] = Corner(i)
		r.co[c.cp[i]] = (3 - c.co[i]) % 3
	}
	for i := 0; i < numEdges; i++ {
		r.ep[c.ep[i]] = Edge(i)
		r.eo[c.ep[i]] = (2 - c.eo[i]) % 2
	}
	return r
}

// ApplyMove returns c with the given (axis, power) move applied.
func (c Cubie) ApplyMove(a Axis, p Power) Cubie {
	return c.Multiply(moveCubes[moveIndex(a, p)])
}

// baseMoves are the six quarter-turn generator cubes. Corner and edge
// identifiers and their order are fixed (see piece.go); these constants
// are the standard reference generators for that labelling and every
// conforming implementation must reproduce them exactly, since all
// coordinate tables are derived from them.
var baseMoves = [6]Cubie{
	AxisU: {
		cp: [8]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		co: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	AxisR: {
		cp: [8]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		co: [8]int{2, 0, 0, 1, 1, 0, 0, 2},
		ep: [12]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	AxisF: {
		cp: [8]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		co: [8]int{1, 2, 0, 0, 2, 1, 0, 0},
		ep: [12]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		eo: [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	AxisD: {
		cp: [8]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		co: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	AxisL: {
		cp: [8]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		co: [8]int{0, 1, 2, 0, 0, 2, 1, 0},
		ep: [12]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	AxisB: {
		cp: [8]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		co: [8]int{0, 0, 1, 2, 0, 0, 2, 1},
		ep: [12]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		eo: [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// moveCubes holds all 18 moves, quarter/half/counter-quarter, for each
// of the six axes, derived by repeated composition of baseMoves.
var moveCubes = func() [numMoves]Cubie {
	var mc [numMoves]Cubie
	for a := Axis(0); a < 6; a++ {
		quarter := baseMoves[a]
		mc[moveIndex(a, Quarter)] = quarter
		half := quarter.Multiply(quarter)
		mc[moveIndex(a, Half)] = half
		mc[moveIndex(a, CounterQuarter)] = half.Multiply(quarter)
	}
	return mc
}()

// cornerOrientationSum and edgeOrientationSum are used by validation.
func (c Cubie) cornerOrientationSum() int {
	s := 0
	for _, o := range c.co {
		s += o
	}
	return s
}

func (c Cubie) edgeOrientationSum() int {
	s := 0
	for _, o := range c.eo {
		s += o
	}
	return s
}

// cornerPermParity and edgePermParity return 0 (even) or 1 (odd).
func (c Cubie) cornerPermParity() int {
	return permutationParity(cornerSliceAsInt(c.cp[:]))
}

func (c Cubie) edgePermParity() int {
	return permutationParity(edgeSliceAsInt(c.ep[:]))
}

func cornerSliceAsInt(cs []Corner) []int {
	out := make([]int, len(cs))
	for i, v := range cs {
		out[i] = int(v)
	}
	return out
}

func edgeSliceAsInt(es []Edge) []int {
	out := make([]int, len(es))
	for i, v := range es {
		out[i] = int(v)
	}
	return out
}

// permutationParity returns 0 for an even permutation, 1 for odd.
func permutationParity(perm []int) int {
	seen := make([]bool, len(perm))
	parity := 0
	for i := range perm {
		if seen[i] {
			continue
		}
		cycleLen := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			cycleLen++
		}
		if cycleLen%2 == 0 {
			parity ^= 1
		}
	}
	return parity
}

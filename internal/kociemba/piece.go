// Package kociemba implements Kociemba's two-phase algorithm for the
// standard 3x3x3 cube: a facelet-to-cubie-to-coordinate pipeline feeding
// an iterative-deepening search over precomputed move and pruning tables.
package kociemba

// Corner identifies one of the eight corner cubies. Order is fixed and
// semantically significant: coordinate arithmetic and the generator
// constants below are defined against it.
type Corner int

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

const numCorners = 8

// Edge identifies one of the twelve edge cubies. Indices 8..11 (FR, FL,
// BL, BR) are the four UD-slice edges; the distinction drives the
// udslice/edge4/edge8 coordinates.
type Edge int

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

const numEdges = 12

func isSliceEdge(e Edge) bool { return e >= FR }

// Axis names a face turned by a move.
type Axis int

const (
	AxisU Axis = iota
	AxisR
	AxisF
	AxisD
	AxisL
	AxisB
)

func (a Axis) String() string {
	return [...]string{"U", "R", "F", "D", "L", "B"}[a]
}

// opposite reports the axis on the same line (U/D, R/L, F/B).
func (a Axis) opposite() Axis {
	switch a {
	case AxisU:
		return AxisD
	case AxisD:
		return AxisU
	case AxisR:
		return AxisL
	case AxisL:
		return AxisR
	case AxisF:
		return AxisB
	case AxisB:
		return AxisF
	}
	panic("unreachable axis")
}

// Power is the number of clockwise quarter turns, 1 (plain), 2 (double)
// or 3 (counter-clockwise quarter, i.e. prime).
type Power int

const (
	Quarter      Power = 1
	Half         Power = 2
	CounterQuarter Power = 3
)

// numMoves is the full 18-move set: 6 axes x 3 powers.
const numMoves = 18

// moveIndex packs (axis, power) into the flat 0..17 move table index.
func moveIndex(a Axis, p Power) int { return int(a)*3 + int(p) - 1 }

func moveAxisPower(m int) (Axis, Power) {
	return Axis(m / 3), Power(m%3 + 1)
}

// phase2Moves lists the 10 moves legal in phase 2: all three powers of
// U and D, and only the half turn on F, B, L, R.
var phase2Moves = func() []int {
	moves := []int{}
	for _, p := range []Power{Quarter, Half, CounterQuarter} {
		moves = append(moves, moveIndex(AxisU, p))
	}
	for _, p := range []Power{Quarter, Half, CounterQuarter} {
		moves = append(moves, moveIndex(AxisD, p))
	}
	for _, a := range []Axis{AxisR, AxisF, AxisL, AxisB} {
		moves = append(moves, moveIndex(a, Half))
	}
	return moves
}()

func isPhase2Move(m int) bool {
	for _, p := range phase2Moves {
		if p == m {
			return true
		}
	}
	return false
}

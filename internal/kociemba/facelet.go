package kociemba

import "strings"

// Facelet names a sticker's home face (the colour it carries in the
// solved state). The facelet string is 54 of these symbols in
// U(9) R(9) F(9) D(9) L(9) B(9) block order, each block read
// row-major top-left to bottom-right as oriented in the standard net.
type Facelet int

const (
	FU Facelet = iota
	FR
	FF
	FD
	FL
	FB
)

func (f Facelet) String() string {
	return [...]string{"U", "R", "F", "D", "L", "B"}[f]
}

func parseFaceletChar(b byte) (Facelet, bool) {
	switch b {
	case 'U':
		return FU, true
	case 'R':
		return FR, true
	case 'F':
		return FF, true
	case 'D':
		return FD, true
	case 'L':
		return FL, true
	case 'B':
		return FB, true
	default:
		return 0, false
	}
}

const numFacelets = 54

// FaceletCube is the 54-sticker colour grid.
type FaceletCube [numFacelets]Facelet

// faceOf returns which face a flat facelet index belongs to.
func faceOf(idx int) Facelet { return Facelet(idx / 9) }

// ParseFacelets parses a 54-character facelet string. It rejects
// anything but exactly 54 characters from {U,R,F,D,L,B}.
func ParseFacelets(s string) (FaceletCube, error) {
	var fc FaceletCube
	if len(s) != numFacelets {
		return fc, &Error{Kind: WrongLength}
	}
	for i := 0; i < numFacelets; i++ {
		f, ok := parseFaceletChar(s[i])
		if !ok {
			return fc, &Error{Kind: InvalidCharacter}
		}
		fc[i] = f
	}
	return fc, nil
}

// String renders the facelet cube back to its 54-character form.
func (fc FaceletCube) String() string {
	var sb strings.Builder
	sb.Grow(numFacelets)
	for _, f := range fc {
		sb.WriteString(f.String())
	}
	return sb.String()
}

// cornerFacelet[c] gives the three flat facelet indices touched by
// corner slot c, in a fixed cyclic order whose first entry is always
// the U/D-facing facelet in the solved cube.
var cornerFacelet = [numCorners][3]int{
	URF: {8, 9, 20},
	UFL: {6, 18, 38},
	ULB: {0, 36, 47},
	UBR: {2, 45, 11},
	DFR: {29, 26, 15},
	DLF: {27, 44, 24},
	DBL: {33, 53, 42},
	DRB: {35, 17, 51},
}

// edgeFacelet[e] gives the two flat facelet indices touched by edge
// slot e, in a fixed order.
var edgeFacelet = [numEdges][2]int{
	UR: {5, 10},
	UF: {7, 19},
	UL: {3, 37},
	UB: {1, 46},
	DR: {32, 16},
	DF: {28, 25},
	DL: {30, 43},
	DB: {34, 52},
	FR: {23, 12},
	FL: {21, 41},
	BL: {50, 39},
	BR: {48, 14},
}

// ToCubie identifies the physical piece and orientation occupying each
// slot from the facelets touching it. It is deterministic on
// well-formed input; on malformed input (a colour triple/pair not
// present in the canonical table, or a duplicate identification) it
// reports MissingCorner or MissingEdge.
func (fc FaceletCube) ToCubie() (Cubie, error) {
	var c Cubie

	cornerSeen := [numCorners]bool{}
	for slot := 0; slot < numCorners; slot++ {
		facelets := cornerFacelet[slot]
		ori := -1
		for k, idx := range facelets {
			if fc[idx] == FU || fc[idx] == FD {
				ori = k
				break
			}
		}
		if ori == -1 {
			return c, &Error{Kind: MissingCorner}
		}
		col1 := fc[facelets[(ori+1)%3]]
		col2 := fc[facelets[(ori+2)%3]]

		found := false
		for j := 0; j < numCorners; j++ {
			jf := cornerFacelet[j]
			if faceOf(jf[1]) == col1 && faceOf(jf[2]) == col2 {
				c.cp[slot] = Corner(j)
				c.co[slot] = ori
				found = true
				break
			}
		}
		if !found {
			return c, &Error{Kind: MissingCorner}
		}
		if cornerSeen[c.cp[slot]] {
			return c, &Error{Kind: MissingCorner}
		}
		cornerSeen[c.cp[slot]] = true
	}

	edgeSeen := [numEdges]bool{}
	for slot := 0; slot < numEdges; slot++ {
		facelets := edgeFacelet[slot]
		a, b := fc[facelets[0]], fc[facelets[1]]

		found := false
		for j := 0; j < numEdges; j++ {
			jf := edgeFacelet[j]
			ca, cb := faceOf(jf[0]), faceOf(jf[1])
			if a == ca && b == cb {
				c.ep[slot] = Edge(j)
				c.eo[slot] = 0
				found = true
				break
			}
			if a == cb && b == ca {
				c.ep[slot] = Edge(j)
				c.eo[slot] = 1
				found = true
				break
			}
		}
		if !found {
			return c, &Error{Kind: MissingEdge}
		}
		if edgeSeen[c.ep[slot]] {
			return c, &Error{Kind: MissingEdge}
		}
		edgeSeen[c.ep[slot]] = true
	}

	return c, nil
}

// FromCubie is the inverse direction: it renders the colour grid that
// a given cubie state would show, used for debugging and round-trip
// testing.
func FromCubie(c Cubie) FaceletCube {
	var fc FaceletCube
	for slot := 0; slot < numCorners; slot++ {
		piece := c.cp[slot]
		ori := c.co[slot]
		pieceFaces := cornerFacelet[piece]
		slotFacelets := cornerFacelet[slot]
		for k := 0; k < 3; k++ {
			fc[slotFacelets[(ori+k)%3]] = faceOf(pieceFaces[k])
		}
	}
	for slot := 0; slot < numEdges; slot++ {
		piece := c.ep[slot]
		slotFacelets := edgeFacelet[slot]
		pieceFaces := edgeFacelet[piece]
		if c.eo[slot] == 0 {
			fc[slotFacelets[0]] = faceOf(pieceFaces[0])
			fc[slotFacelets[1]] = faceOf(pieceFaces[1])
		} else {
			fc[slotFacelets[0]] = faceOf(pieceFaces[1])
			fc[slotFacelets[1]] = faceOf(pieceFaces[0])
		}
	}
	return fc
}

// colorCounts counts how many of each facelet symbol occur.
func (fc FaceletCube) colorCounts() [6]int {
	var counts [6]int
	for _, f := range fc {
		counts[f]++
	}
	return counts
}

// Validate runs the facelet/cubie legality checks in the fixed order
// spec'd for the validator, returning the first violated condition.
func Validate(fc FaceletCube) (Cubie, error) {
	counts := fc.colorCounts()
	for _, n := range counts {
		if n > 9 {
			return Cubie{}, &Error{Kind: DuplicateColour}
		}
		if n < 9 {
			return Cubie{}, &Error{Kind: MissingColour}
		}
	}

	c, err := fc.ToCubie()
	if err != nil {
		return c, err
	}

	if c.cornerOrientationSum()%3 != 0 {
		return c, &Error{Kind: BadCornerTwist}
	}
	if c.edgeOrientationSum()%2 != 0 {
		return c, &Error{Kind: BadEdgeFlip}
	}
	if c.cornerPermParity() != c.edgePermParity() {
		return c, &Error{Kind: ParityMismatch}
	}

	return c, nil
}

package kociemba

// Move is a single (axis, power) turn, the unit the search driver and
// the public solve API both work in; see render.go for notation.
type Move struct {
	Axis  Axis
	Power Power
}

// candidate is one (axis, power) move the search may try; the moves
// legal in phase 2 are those listed in phase2Candidates.
type candidate struct {
	axis  Axis
	power Power
}

var phase1Candidates = func() []candidate {
	var c []candidate
	for a := Axis(0); a < 6; a++ {
		for _, p := range []Power{Quarter, Half, CounterQuarter} {
			c = append(c, candidate{a, p})
		}
	}
	return c
}()

var phase2Candidates = func() []candidate {
	var c []candidate
	for _, a := range []Axis{AxisU, AxisD} {
		for _, p := range []Power{Quarter, Half, CounterQuarter} {
			c = append(c, candidate{a, p})
		}
	}
	for _, a := range []Axis{AxisR, AxisF, AxisL, AxisB} {
		c = append(c, candidate{a, Half})
	}
	return c
}()

// allowed applies the same-axis / canonical-opposite-axis filter
// (§4.6): never repeat an axis consecutively, and when two consecutive
// moves are on opposite axes only allow the canonical order (lower
// axis index before its opposite) to avoid exploring both U-then-D and
// D-then-U for the same net effect.
func allowed(cand candidate, prev Axis, havePrev bool) bool {
	if !havePrev {
		return true
	}
	if cand.axis == prev {
		return false
	}
	if cand.axis == prev.opposite() && prev > cand.axis {
		return false
	}
	return true
}

// phase1Run holds the state of §4.6's phase-1 IDA*. On success its
// search method records the full solution (phase-1 prefix + phase-2 completion) found by
// seeding and solving phase 2 from the first phase-1 goal it reaches
// within budget.
type phase1Run struct {
	tables  *Tables
	start   Cubie
	twist   []int
	flip    []int
	udslice []int
	axis    []Axis
	power   []Power
	result  []Move
}

func (r *phase1Run) h1(n int) int {
	a := r.tables.UDSliceTwistPrune.Get(r.udslice[n], r.twist[n])
	b := r.tables.UDSliceFlipPrune.Get(r.udslice[n], r.flip[n])
	if a > b {
		return a
	}
	return b
}

func (r *phase1Run) search(n, budget, maxTotal int) bool {
	if r.h1(n) == 0 {
		return r.seedPhase2(n, maxTotal)
	}
	if r.h1(n) > budget {
		return false
	}
	var prev Axis
	havePrev := n > 0
	if havePrev {
		prev = r.axis[n-1]
	}
	for _, cand := range phase1Candidates {
		if !allowed(cand, prev, havePrev) {
			continue
		}
		m := moveIndex(cand.axis, cand.power)
		r.twist[n+1] = int(r.tables.Twist[r.twist[n]][m])
		r.flip[n+1] = int(r.tables.Flip[r.flip[n]][m])
		r.udslice[n+1] = int(r.tables.UDSlice[r.udslice[n]][m])
		r.axis[n] = cand.axis
		r.power[n] = cand.power
		if r.search(n+1, budget-1, maxTotal) {
			return true
		}
	}
	return false
}

// seedPhase2 replays the first n moves from the original cubie to
// compute the phase-2 coordinates, per §4.6's specified (sound) seed
// approach, then tries ascending phase-2 budgets.
func (r *phase1Run) seedPhase2(n, maxTotal int) bool {
	c := r.start
	for i := 0; i < n; i++ {
		c = c.ApplyMove(r.axis[i], r.power[i])
	}

	p2 := &phase2Run{
		tables: r.tables,
		edge4:  make([]int, maxTotal-n+1),
		edge8:  make([]int, maxTotal-n+1),
		corner: make([]int, maxTotal-n+1),
		axis:   make([]Axis, maxTotal-n+1),
		power:  make([]Power, maxTotal-n+1),
	}
	p2.edge4[0] = c.Edge4()
	p2.edge8[0] = c.Edge8()
	p2.corner[0] = c.CornerPerm()

	var carryAxis Axis
	haveCarry := n > 0
	if haveCarry {
		carryAxis = r.axis[n-1]
	}

	for budget := 0; budget <= maxTotal-n; budget++ {
		if p2.search(0, budget, carryAxis, haveCarry) {
			r.result = make([]Move, 0, n+budget)
			for i := 0; i < n; i++ {
				r.result = append(r.result, Move{r.axis[i], r.power[i]})
			}
			depth := p2.solvedDepth
			for i := 0; i < depth; i++ {
				r.result = append(r.result, Move{p2.axis[i], p2.power[i]})
			}
			return true
		}
	}
	return false
}

type phase2Run struct {
	tables      *Tables
	edge4       []int
	edge8       []int
	corner      []int
	axis        []Axis
	power       []Power
	solvedDepth int
}

func (r *phase2Run) h2(n int) int {
	a := r.tables.Edge4CornerPrune.Get(r.edge4[n], r.corner[n])
	b := r.tables.Edge4Edge8Prune.Get(r.edge4[n], r.edge8[n])
	if a > b {
		return a
	}
	return b
}

func (r *phase2Run) search(n, budget int, carryAxis Axis, haveCarry bool) bool {
	if r.h2(n) == 0 {
		r.solvedDepth = n
		return true
	}
	if r.h2(n) > budget {
		return false
	}
	prev, havePrev := carryAxis, haveCarry
	if n > 0 {
		prev, havePrev = r.axis[n-1], true
	}
	for _, cand := range phase2Candidates {
		if !allowed(cand, prev, havePrev) {
			continue
		}
		m := moveIndex(cand.axis, cand.power)
		r.edge4[n+1] = int(r.tables.Edge4[r.edge4[n]][m])
		r.edge8[n+1] = int(r.tables.Edge8[r.edge8[n]][m])
		r.corner[n+1] = int(r.tables.Corner[r.corner[n]][m])
		r.axis[n] = cand.axis
		r.power[n] = cand.power
		if r.search(n+1, budget-1, carryAxis, haveCarry) {
			return true
		}
	}
	return false
}

// solveAtTotalDepth runs one outer iteration of the driver in §4.6's
// "Termination" paragraph: a single phase-1 IDA* pass bounded to
// maxTotal total moves, seeding phase 2 at every phase-1 goal it
// reaches along the way.
func solveAtTotalDepth(start Cubie, tables *Tables, maxTotal int) ([]Move, bool) {
	r := &phase1Run{
		tables:  tables,
		start:   start,
		twist:   make([]int, maxTotal+1),
		flip:    make([]int, maxTotal+1),
		udslice: make([]int, maxTotal+1),
		axis:    make([]Axis, maxTotal+1),
		power:   make([]Power, maxTotal+1),
	}
	r.twist[0] = start.Twist()
	r.flip[0] = start.Flip()
	r.udslice[0] = start.UDSlice()

	if r.search(0, maxTotal, maxTotal) {
		return r.result, true
	}
	return nil, false
}

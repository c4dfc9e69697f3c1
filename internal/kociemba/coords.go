package kociemba

// Coordinate space sizes.
const (
	twistStates   = 2187 // 3^7
	flipStates    = 2048 // 2^11
	udsliceStates = 495  // C(12,4)
	edge4States   = 24   // 4!
	edge8States   = 40320 // 8!
	cornerStates  = 40320 // 8!
)

var factorials = func() [13]int64 {
	var f [13]int64
	f[0] = 1
	for i := 1; i < len(f); i++ {
		f[i] = f[i-1] * int64(i)
	}
	return f
}()

func factorial(n int) int64 {
	if n < 0 {
		return 0
	}
	return factorials[n]
}

// binomial computes C(n, k), returning 0 when k > n or n < 0 or k < 0,
// per the spec's edge-case handling for the udslice rank.
func binomial(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return int(factorial(n) / (factorial(k) * factorial(n-k)))
}

// euclidMod is a true Euclidean modulus: always non-negative, unlike
// Go's native %, which can return a negative result for a negative
// dividend. Several coordinate setters below subtract before reducing
// mod k and must use this, not %, to avoid the classic off-by-sign bug.
func euclidMod(x, k int) int {
	m := x % k
	if m < 0 {
		m += k
	}
	return m
}

// Twist returns the corner-orientation coordinate in [0, 2187).
func (c Cubie) Twist() int {
	t := 0
	for i := 0; i < numCorners-1; i++ {
		t = t*3 + c.co[i]
	}
	return t
}

// SetTwist returns a cubie with identity permutations and the corner
// orientations decoded from t; used only when building move tables,
// where twist's evolution under a move depends only on the co array.
func SetTwist(t int) Cubie {
	c := Solved()
	sum := 0
	for i := numCorners - 2; i >= 0; i-- {
		c.co[i] = t % 3
		sum += c.co[i]
		t /= 3
	}
	c.co[numCorners-1] = euclidMod(-sum, 3)
	return c
}

// Flip returns the edge-orientation coordinate in [0, 2048).
func (c Cubie) Flip() int {
	f := 0
	for i := 0; i < numEdges-1; i++ {
		f = f*2 + c.eo[i]
	}
	return f
}

// SetFlip is Flip's inverse setter.
func SetFlip(v int) Cubie {
	c := Solved()
	sum := 0
	for i := numEdges - 2; i >= 0; i-- {
		c.eo[i] = v % 2
		sum += c.eo[i]
		v /= 2
	}
	c.eo[numEdges-1] = euclidMod(-sum, 2)
	return c
}

// UDSlice ranks the positions of the four slice edges (FR,FL,BL,BR)
// among the C(12,4) possible 4-subsets of the twelve edge slots.
func (c Cubie) UDSlice() int {
	coord := 0
	seen := 0
	k := -1
	for i := 0; i < numEdges; i++ {
		if isSliceEdge(c.ep[i]) {
			seen++
			k = seen - 1
		} else if k >= 0 {
			coord += binomial(i, k)
		}
	}
	return coord
}

// udsliceSubsets[coord] is the set of slot indices (as a bool mask)
// holding slice edges for that coordinate, precomputed once by
// brute-force enumeration of all C(12,4) subsets through the same
// ranking rule UDSlice uses above, giving SetUDSlice its inverse.
var udsliceSubsets = func() [udsliceStates][4]int {
	var table [udsliceStates][4]int
	var subset [4]int
	var choose func(start, depth int)
	choose = func(start, depth int) {
		if depth == 4 {
			var mask [numEdges]bool
			for _, s := range subset {
				mask[s] = true
			}
			coord := 0
			seen := 0
			k := -1
			for i := 0; i < numEdges; i++ {
				if mask[i] {
					seen++
					k = seen - 1
				} else if k >= 0 {
					coord += binomial(i, k)
				}
			}
			table[coord] = subset
			return
		}
		for i := start; i < numEdges; i++ {
			subset[depth] = i
			choose(i+1, depth+1)
		}
	}
	choose(0, 0)
	return table
}()

// SetUDSlice builds a canonical cubie whose slice edges (identities
// FR,FL,BL,BR, in that order) occupy the slots named by coordinate v,
// and whose remaining slots hold the non-slice edges in order.
func SetUDSlice(v int) Cubie {
	c := Solved()
	slots := udsliceSubsets[v]
	isSlice := [numEdges]bool{}
	for _, s := range slots {
		isSlice[s] = true
	}
	sliceEdge := 0
	otherEdge := 0
	for i := 0; i < numEdges; i++ {
		if isSlice[i] {
			c.ep[i] = Edge(int(FR) + sliceEdge)
			sliceEdge++
		} else {
			c.ep[i] = Edge(otherEdge)
			otherEdge++
		}
	}
	return c
}

// lehmerRank computes the standard Lehmer-code rank of perm, a
// permutation of 0..n-1: for each position, the count of later,
// smaller elements, weighted by factorial of the remaining length.
func lehmerRank(perm []int) int {
	n := len(perm)
	rank := 0
	for i := 0; i < n; i++ {
		smaller := 0
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				smaller++
			}
		}
		rank += smaller * int(factorial(n-1-i))
	}
	return rank
}

// lehmerUnrank is lehmerRank's inverse over the elements 0..n-1.
func lehmerUnrank(rank, n int) []int {
	elements := make([]int, n)
	for i := range elements {
		elements[i] = i
	}
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		f := int(factorial(n - 1 - i))
		idx := rank / f
		rank %= f
		perm[i] = elements[idx]
		elements = append(elements[:idx], elements[idx+1:]...)
	}
	return perm
}

// Edge4 ranks the permutation of the four slice edges as they appear
// in slots 8..11, in [0, 24).
func (c Cubie) Edge4() int {
	perm := make([]int, 4)
	for i := 0; i < 4; i++ {
		perm[i] = int(c.ep[8+i]) - int(FR)
	}
	return lehmerRank(perm)
}

// SetEdge4 sets ep[8..11] from coordinate v, leaving every other field
// at its Solved default.
func SetEdge4(v int) Cubie {
	c := Solved()
	perm := lehmerUnrank(v, 4)
	for i := 0; i < 4; i++ {
		c.ep[8+i] = Edge(int(FR) + perm[i])
	}
	return c
}

// Edge8 ranks the permutation of the eight non-slice edges as they
// appear in slots 0..7, in [0, 40320).
func (c Cubie) Edge8() int {
	perm := make([]int, 8)
	for i := 0; i < 8; i++ {
		perm[i] = int(c.ep[i])
	}
	return lehmerRank(perm)
}

// SetEdge8 sets ep[0..7] from coordinate v.
func SetEdge8(v int) Cubie {
	c := Solved()
	perm := lehmerUnrank(v, 8)
	for i := 0; i < 8; i++ {
		c.ep[i] = Edge(perm[i])
	}
	return c
}

// CornerPerm ranks the corner permutation over all eight corners, in
// [0, 40320).
func (c Cubie) CornerPerm() int {
	perm := make([]int, 8)
	for i := 0; i < 8; i++ {
		perm[i] = int(c.cp[i])
	}
	return lehmerRank(perm)
}

// SetCornerPerm sets cp[0..7] from coordinate v.
func SetCornerPerm(v int) Cubie {
	c := Solved()
	perm := lehmerUnrank(v, 8)
	for i := 0; i < 8; i++ {
		c.cp[i] = Corner(perm[i])
	}
	return c
}

package kociemba

import "testing"

func TestEuclidMod(t *testing.T) {
	cases := []struct{ x, k, want int }{
		{5, 3, 2},
		{-1, 3, 2},
		{-5, 3, 1},
		{0, 3, 0},
		{-1, 2, 1},
	}
	for _, c := range cases {
		if got := euclidMod(c.x, c.k); got != c.want {
			t.Errorf("euclidMod(%d, %d) = %d, want %d", c.x, c.k, got, c.want)
		}
	}
}

func TestBinomialEdgeCases(t *testing.T) {
	if binomial(5, 6) != 0 {
		t.Error("binomial(5,6) should be 0 (k > n)")
	}
	if binomial(-1, 0) != 0 {
		t.Error("binomial(-1,0) should be 0 (n < 0)")
	}
	if binomial(5, -1) != 0 {
		t.Error("binomial(5,-1) should be 0 (k < 0)")
	}
	if binomial(5, 0) != 1 {
		t.Error("binomial(5,0) should be 1")
	}
	if binomial(12, 4) != 495 {
		t.Errorf("binomial(12,4) = %d, want 495", binomial(12, 4))
	}
}

func TestSolvedCoordinatesAreZero(t *testing.T) {
	s := Solved()
	if s.Twist() != 0 {
		t.Errorf("Solved().Twist() = %d, want 0", s.Twist())
	}
	if s.Flip() != 0 {
		t.Errorf("Solved().Flip() = %d, want 0", s.Flip())
	}
	if s.UDSlice() != 0 {
		t.Errorf("Solved().UDSlice() = %d, want 0", s.UDSlice())
	}
	if s.Edge4() != 0 {
		t.Errorf("Solved().Edge4() = %d, want 0", s.Edge4())
	}
	if s.Edge8() != 0 {
		t.Errorf("Solved().Edge8() = %d, want 0", s.Edge8())
	}
	if s.CornerPerm() != 0 {
		t.Errorf("Solved().CornerPerm() = %d, want 0", s.CornerPerm())
	}
}

func TestTwistRoundTrip(t *testing.T) {
	for v := 0; v < twistStates; v += 37 {
		c := SetTwist(v)
		if got := c.Twist(); got != v {
			t.Errorf("SetTwist(%d).Twist() = %d", v, got)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for v := 0; v < flipStates; v += 41 {
		c := SetFlip(v)
		if got := c.Flip(); got != v {
			t.Errorf("SetFlip(%d).Flip() = %d", v, got)
		}
	}
}

func TestUDSliceRoundTrip(t *testing.T) {
	for v := 0; v < udsliceStates; v++ {
		c := SetUDSlice(v)
		if got := c.UDSlice(); got != v {
			t.Errorf("SetUDSlice(%d).UDSlice() = %d", v, got)
		}
	}
}

func TestEdge4RoundTrip(t *testing.T) {
	for v := 0; v < edge4States; v++ {
		c := SetEdge4(v)
		if got := c.Edge4(); got != v {
			t.Errorf("SetEdge4(%d).Edge4() = %d", v, got)
		}
	}
}

func TestEdge8RoundTrip(t *testing.T) {
	for v := 0; v < edge8States; v += 97 {
		c := SetEdge8(v)
		if got := c.Edge8(); got != v {
			t.Errorf("SetEdge8(%d).Edge8() = %d", v, got)
		}
	}
}

func TestCornerPermRoundTrip(t *testing.T) {
	for v := 0; v < cornerStates; v += 97 {
		c := SetCornerPerm(v)
		if got := c.CornerPerm(); got != v {
			t.Errorf("SetCornerPerm(%d).CornerPerm() = %d", v, got)
		}
	}
}

func TestLehmerRankUnrankRoundTrip(t *testing.T) {
	perms := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
	}
	for _, p := range perms {
		r := lehmerRank(p)
		got := lehmerUnrank(r, len(p))
		for i := range p {
			if got[i] != p[i] {
				t.Errorf("lehmerUnrank(lehmerRank(%v)) = %v", p, got)
				break
			}
		}
	}
}

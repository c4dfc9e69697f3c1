package kociemba

import "testing"

const solvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestParseFaceletsWrongLength(t *testing.T) {
	_, err := ParseFacelets("UUU")
	if kind, ok := KindOf(err); !ok || kind != WrongLength {
		t.Errorf("ParseFacelets(short string) = %v, want WrongLength", err)
	}
}

func TestParseFaceletsInvalidCharacter(t *testing.T) {
	bad := "X" + solvedFacelets[1:]
	_, err := ParseFacelets(bad)
	if kind, ok := KindOf(err); !ok || kind != InvalidCharacter {
		t.Errorf("ParseFacelets(invalid char) = %v, want InvalidCharacter", err)
	}
}

func TestParseFaceletsRoundTrip(t *testing.T) {
	fc, err := ParseFacelets(solvedFacelets)
	if err != nil {
		t.Fatalf("ParseFacelets(solved) error = %v", err)
	}
	if fc.String() != solvedFacelets {
		t.Errorf("fc.String() = %q, want %q", fc.String(), solvedFacelets)
	}
}

// TestFromCubieToCubieRoundTrip covers spec.md §8: for every legal
// facelet string s, from_cubie(to_cubie(s)) == s.
func TestFromCubieToCubieRoundTrip(t *testing.T) {
	scrambled := Solved().
		ApplyMove(AxisR, Quarter).
		ApplyMove(AxisU, CounterQuarter).
		ApplyMove(AxisF, Half).
		ApplyMove(AxisL, Quarter)

	fc := FromCubie(scrambled)
	back, err := fc.ToCubie()
	if err != nil {
		t.Fatalf("ToCubie() error = %v", err)
	}
	if back != scrambled {
		t.Error("ToCubie(FromCubie(c)) != c")
	}
	if FromCubie(back) != fc {
		t.Error("FromCubie(ToCubie(fc)) != fc")
	}
}

func TestValidateSolved(t *testing.T) {
	fc, _ := ParseFacelets(solvedFacelets)
	if _, err := Validate(fc); err != nil {
		t.Errorf("Validate(solved) error = %v, want nil", err)
	}
}

func TestValidateBadEdgeFlip(t *testing.T) {
	c := Solved()
	c.eo[0] = 1
	fc := FromCubie(c)
	_, err := Validate(fc)
	if kind, ok := KindOf(err); !ok || kind != BadEdgeFlip {
		t.Errorf("Validate(one edge flipped) = %v, want BadEdgeFlip", err)
	}
}

func TestValidateBadCornerTwist(t *testing.T) {
	c := Solved()
	c.co[0] = 1
	fc := FromCubie(c)
	_, err := Validate(fc)
	if kind, ok := KindOf(err); !ok || kind != BadCornerTwist {
		t.Errorf("Validate(one corner twisted) = %v, want BadCornerTwist", err)
	}
}

func TestValidateParityMismatch(t *testing.T) {
	c := Solved()
	c.cp[0], c.cp[1] = c.cp[1], c.cp[0]
	fc := FromCubie(c)
	_, err := Validate(fc)
	if kind, ok := KindOf(err); !ok || kind != ParityMismatch {
		t.Errorf("Validate(two corners swapped) = %v, want ParityMismatch", err)
	}
}

func TestValidateDuplicateAndMissingColour(t *testing.T) {
	bad := "U" + solvedFacelets[1:9] + "U" + solvedFacelets[10:]
	fc, err := ParseFacelets(bad)
	if err != nil {
		t.Fatalf("ParseFacelets error = %v", err)
	}
	_, verr := Validate(fc)
	if kind, ok := KindOf(verr); !ok || (kind != DuplicateColour && kind != MissingColour) {
		t.Errorf("Validate(skewed colour counts) = %v, want DuplicateColour or MissingColour", verr)
	}
}

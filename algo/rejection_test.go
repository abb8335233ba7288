package algo

import "testing"

func TestRejectionFilterMatchAcceptsSubset(t *testing.T) {
	candidate := FromString("translatesAutoresizingMaskIntoConstraints")
	pattern := FromString("tamic")
	if got := Match(pattern, candidate); got != Maybe {
		t.Fatalf("Match(tamic, translates...) = %v, want Maybe", got)
	}
}

func TestRejectionFilterRejectsImpossibleByte(t *testing.T) {
	candidate := FromString("foo")
	pattern := FromString("z")
	if got := Match(pattern, candidate); got != No {
		t.Fatalf("Match(z, foo) = %v, want No", got)
	}
}

func TestRejectionFilterEmptyPatternAlwaysMaybe(t *testing.T) {
	candidate := FromString("anything")
	var pattern RejectionFilter
	if got := Match(pattern, candidate); got != Maybe {
		t.Fatalf("Match(empty, anything) = %v, want Maybe", got)
	}
}

func TestRejectionFilterCaseInsensitive(t *testing.T) {
	lower := FromString("foo")
	upper := FromString("FOO")
	if lower.Mask() != upper.Mask() {
		t.Fatalf("FromString(foo).Mask() = %032b, FromString(FOO).Mask() = %032b, want equal", lower.Mask(), upper.Mask())
	}
}

func TestRejectionFilterUnion(t *testing.T) {
	a := FromString("ab")
	b := FromString("cd")
	u := a.Union(b)
	if Match(FromString("a"), u) != Maybe || Match(FromString("d"), u) != Maybe {
		t.Fatalf("Union(ab, cd) does not contain bits for a and d")
	}
}

func TestRejectionFilterUnionByte(t *testing.T) {
	var f RejectionFilter
	f.UnionByte('x')
	if Match(FromString("x"), f) != Maybe {
		t.Fatalf("UnionByte('x') did not set the bit for x")
	}
}

func TestBitForNeverZero(t *testing.T) {
	for b := 0; b < 256; b++ {
		if bitFor(byte(b)) == 0 {
			t.Fatalf("bitFor(%d) = 0, want nonzero", b)
		}
	}
}

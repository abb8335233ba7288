package algo

import "testing"

func TestNewPatternLowercasesAndDetectsMixedcase(t *testing.T) {
	p := NewPattern([]byte("FooBar"))
	if string(p.Lowercase()) != "foobar" {
		t.Errorf("Lowercase() = %q, want %q", p.Lowercase(), "foobar")
	}
	if string(p.Mixedcase()) != "FooBar" {
		t.Errorf("Mixedcase() = %q, want %q", p.Mixedcase(), "FooBar")
	}
	if !p.HasMixedcase() {
		t.Errorf("HasMixedcase() = false, want true")
	}
}

func TestNewPatternAllLowercaseHasNoMixedcase(t *testing.T) {
	p := NewPattern([]byte("foobar"))
	if p.HasMixedcase() {
		t.Errorf("HasMixedcase() = true, want false")
	}
}

func TestPatternLenAndIsEmpty(t *testing.T) {
	p := NewPattern([]byte("abc"))
	if p.Len() != 3 || p.IsEmpty() {
		t.Errorf("Len()=%d IsEmpty()=%v, want 3 false", p.Len(), p.IsEmpty())
	}
	empty := NewPattern(nil)
	if !empty.IsEmpty() {
		t.Errorf("IsEmpty() = false for empty pattern, want true")
	}
}

func TestPatternSuccessiveFilterShrinksRightward(t *testing.T) {
	p := NewPattern([]byte("abc"))
	whole := p.SuccessiveFilter(0)
	last := p.SuccessiveFilter(2)
	if whole.Mask()&last.Mask() != last.Mask() {
		t.Errorf("successive filter at 0 does not superset filter at 2")
	}
}

func TestPatternFilterMatchesItsOwnBytes(t *testing.T) {
	p := NewPattern([]byte("tamic"))
	if Match(p.Filter(), p.Filter()) != Maybe {
		t.Errorf("pattern filter does not match itself")
	}
}

package algo

import "testing"

func tokenLengths(tok Tokenization) []int {
	lens := make([]int, len(tok.Tokens))
	for i, t := range tok.Tokens {
		lens[i] = t.Length
	}
	return lens
}

func TestTokenizeCamelCase(t *testing.T) {
	tok := Tokenize([]byte("translatesAutoresizingMaskIntoConstraints"), 0, AffinityFirst)
	want := []string{"translates", "Autoresizing", "Mask", "Into", "Constraints"}
	if len(tok.Tokens) != len(want) {
		t.Fatalf("got %d tokens (%v), want %d (%v)", len(tok.Tokens), tokenLengths(tok), len(want), want)
	}
	off := 0
	for i, w := range want {
		if tok.Tokens[i].Length != len(w) {
			t.Errorf("token %d: length %d, want %d (%q)", i, tok.Tokens[i].Length, len(w), w)
		}
		off += len(w)
	}
}

func TestTokenizeAllUppercaseRunIsOneToken(t *testing.T) {
	tok := Tokenize([]byte("NSURL"), 0, AffinityFirst)
	if len(tok.Tokens) != 1 {
		t.Fatalf("Tokenize(NSURL) produced %d tokens, want 1", len(tok.Tokens))
	}
	if !tok.Tokens[0].AllUppercase {
		t.Errorf("Tokenize(NSURL)[0].AllUppercase = false, want true")
	}
}

func TestTokenizeDelimiterSplitsTokens(t *testing.T) {
	tok := Tokenize([]byte("foo.bar"), 0, AffinityFirst)
	if len(tok.Tokens) != 3 {
		t.Fatalf("Tokenize(foo.bar) produced %d tokens, want 3 (foo, ., bar)", len(tok.Tokens))
	}
}

func TestTokenizeBaseNameAffinityFirstVsLast(t *testing.T) {
	first := Tokenize([]byte("a.b.c"), '.', AffinityFirst)
	if first.BaseNameLength != 1 {
		t.Errorf("AffinityFirst base name length = %d, want 1", first.BaseNameLength)
	}
	last := Tokenize([]byte("a.b.c"), '.', AffinityLast)
	if last.BaseNameLength != 3 {
		t.Errorf("AffinityLast base name length = %d, want 3", last.BaseNameLength)
	}
}

func TestFirstNonBaseNameTokenIndex(t *testing.T) {
	tok := Tokenize([]byte("foo(bar"), '(', AffinityFirst)
	idx := tok.FirstNonBaseNameTokenIndex()
	if idx < 0 || idx >= len(tok.Tokens) {
		t.Fatalf("FirstNonBaseNameTokenIndex() = %d out of range [0, %d)", idx, len(tok.Tokens))
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tok := Tokenize(nil, 0, AffinityFirst)
	if len(tok.Tokens) != 0 {
		t.Errorf("Tokenize(nil) produced %d tokens, want 0", len(tok.Tokens))
	}
}

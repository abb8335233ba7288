package algo

import "github.com/fuzzyrank/fuzzyrank/internal/util"

// Affinity controls how a Tokenization's base-name boundary is tracked
// while scanning: symbols lock onto the first separator they see (a
// function's first '(' opens its argument list), filenames keep sliding
// to the last one (a file's base name ends at its final '.').
type Affinity int

const (
	AffinityFirst Affinity = iota
	AffinityLast
)

// TokenAddress locates a single byte within a Tokenization: which token it
// belongs to, and its offset within that token.
type TokenAddress struct {
	TokenIndex   int
	IndexInToken int
}

// Token is one camelCase/delimiter-separated piece of an identifier. Tokens
// are never empty.
type Token struct {
	Length       int
	AllUppercase bool
}

// Tokenization is the result of splitting an identifier's bytes into
// Tokens, with a per-byte back-reference to its (token, offset) address.
type Tokenization struct {
	Tokens                           []Token
	ByteAddr                         []TokenAddress
	BaseNameLength                   int
	BaseNameAffinity                 Affinity
	HasNonUppercaseNonDelimiterBytes bool
}

// FirstNonBaseNameTokenIndex returns the index of the first token that
// starts at or after BaseNameLength, or len(Tokens) if the base name spans
// the whole identifier.
func (t *Tokenization) FirstNonBaseNameTokenIndex() int {
	if t.BaseNameLength < len(t.ByteAddr) {
		return t.ByteAddr[t.BaseNameLength].TokenIndex
	}
	return len(t.Tokens)
}

// Tokenize splits identifier bytes into a Tokenization. baseNameSeparator
// is '(' for symbols, '.' for filenames, or 0 for content types that don't
// track a base name at all.
//
// A token boundary is placed before byte i when any holds: byte i is
// uppercase and either its predecessor or successor is a non-delimiter,
// non-uppercase byte ("other"); byte i is a delimiter; or byte i-1 is a
// delimiter. This is the generalization of fzf's bonusFor camelCase/
// word-boundary detection (src/algo/algo.go) from "compute a bonus at this
// position" to "materialize the token this position belongs to".
func Tokenize(b []byte, baseNameSeparator byte, affinity Affinity) Tokenization {
	n := len(b)
	if n == 0 {
		return Tokenization{BaseNameAffinity: affinity}
	}

	tokenStart := make([]bool, n)
	tokenStart[0] = true
	for i := 1; i < n; i++ {
		cur := util.ClassOf(b[i])
		prev := util.ClassOf(b[i-1])
		boundary := false
		if cur == util.ClassUpper {
			prevOther := prev == util.ClassOther
			nextOther := i+1 < n && util.ClassOf(b[i+1]) == util.ClassOther
			if prevOther || nextOther {
				boundary = true
			}
		}
		if cur == util.ClassDelimiter || prev == util.ClassDelimiter {
			boundary = true
		}
		tokenStart[i] = boundary
	}

	tokens := make([]Token, 0, n)
	byteAddr := make([]TokenAddress, n)
	tokenIdx := -1
	posInToken := 0
	curLen := 0
	allUpper := true
	hasOther := false

	flush := func() {
		if tokenIdx >= 0 {
			tokens = append(tokens, Token{Length: curLen, AllUppercase: allUpper})
		}
	}

	for i := 0; i < n; i++ {
		if tokenStart[i] {
			flush()
			tokenIdx++
			curLen = 0
			posInToken = 0
			allUpper = true
		}
		byteAddr[i] = TokenAddress{TokenIndex: tokenIdx, IndexInToken: posInToken}
		curLen++
		posInToken++
		switch util.ClassOf(b[i]) {
		case util.ClassOther:
			allUpper = false
			hasOther = true
		case util.ClassDelimiter:
			allUpper = false
		}
	}
	flush()

	baseNameLength := n
	if baseNameSeparator != 0 {
		found := -1
		for i := 0; i < n; i++ {
			if b[i] == baseNameSeparator {
				if affinity == AffinityFirst {
					if found < 0 {
						found = i
					}
				} else {
					found = i
				}
			}
		}
		if found >= 0 {
			baseNameLength = found
		}
	}

	return Tokenization{
		Tokens:                           tokens,
		ByteAddr:                         byteAddr,
		BaseNameLength:                   baseNameLength,
		BaseNameAffinity:                 affinity,
		HasNonUppercaseNonDelimiterBytes: hasOther,
	}
}

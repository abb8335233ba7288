package algo

import "github.com/fuzzyrank/fuzzyrank/internal/util"

// IndexedCandidate is the per-call scratch built once per scoring attempt:
// a lowercased copy of the candidate bytes, its tokenization, and the
// cumulative byte offset of each token's first byte. It is scoped to one
// matchAndScore call and discarded afterward — the Go analogue of the
// spec's scratch-allocator-owned tokenization (see package doc).
//
// slab/intOff/i32Off let IndexedCandidate and thoroughSearch share one
// bump arena across the several scratch arrays a single thorough search
// needs (token offsets, the next-search-start jump table, candidate
// successive filters), the same offset-threading discipline fzf's
// FuzzyMatchV2 uses when it carves H0/C0/B/F/T one after another out of a
// single util.Slab (src/algo/algo.go).
type IndexedCandidate struct {
	Bytes       []byte
	Lower       []byte
	Filter      RejectionFilter
	Tok         Tokenization
	tokenOffset []int

	slab   *util.Slab
	intOff int
	i32Off int
}

// NewIndexedCandidate builds the scratch needed to match and score one
// candidate against one pattern. slab, when non-nil, backs the int and int32
// scratch arrays this candidate and the thorough search over it allocate
// (token offsets, the jump table, the successive-filter masks); the
// lowercased copy and the tokenization are always plain allocations. nil
// falls back to plain make()s, the same nil-safe contract util.Slab's own
// Alloc32/AllocInt give fzf's alloc16/alloc32.
func NewIndexedCandidate(bytes []byte, params ContentTypeParams, slab *util.Slab) *IndexedCandidate {
	ic := &IndexedCandidate{slab: slab}

	lower := make([]byte, len(bytes))
	for i, b := range bytes {
		lower[i] = util.ToLower(b)
	}
	tok := Tokenize(bytes, params.BaseNameSeparator, params.BaseNameAffinity)

	offsets := ic.allocInt(len(tok.Tokens))
	off := 0
	for i, t := range tok.Tokens {
		offsets[i] = off
		off += t.Length
	}

	ic.Bytes = bytes
	ic.Lower = lower
	ic.Filter = FromLowercaseBytes(lower)
	ic.Tok = tok
	ic.tokenOffset = offsets
	return ic
}

// allocInt carves a size-length window of scratch ints out of ic's slab,
// advancing the cursor so a later caller (thoroughSearch's jump table)
// never aliases a region this candidate already claimed.
func (ic *IndexedCandidate) allocInt(size int) []int {
	next, s := util.AllocInt(ic.intOff, ic.slab, size)
	ic.intOff = next
	return s
}

// allocI32 is allocInt's int32 counterpart, used for rejection-filter mask
// scratch.
func (ic *IndexedCandidate) allocI32(size int) []int32 {
	next, s := util.Alloc32(ic.i32Off, ic.slab, size)
	ic.i32Off = next
	return s
}

// TokenStart returns the byte offset of token index ti.
func (ic *IndexedCandidate) TokenStart(ti int) int {
	return ic.tokenOffset[ti]
}

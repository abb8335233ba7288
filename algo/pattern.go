package algo

import "github.com/fuzzyrank/fuzzyrank/internal/util"

// Pattern holds the immutable, content-type-independent state derived from
// a user-typed string: its bytes in both original and lowercased form, a
// rejection filter over the whole pattern, and a per-position "successive"
// filter used by the thorough search to prune partial partitions early.
//
// Modeled on fzf's Pattern (src/pattern.go's BuildPattern): a constructor
// function producing an immutable value, never a zero-value struct with
// exported fields a caller could half-populate.
type Pattern struct {
	mixedcaseBytes []byte
	lowercaseBytes []byte
	hasMixedcase   bool
	filter         RejectionFilter
	successive     []RejectionFilter
}

// NewPattern builds a Pattern from the user's typed bytes.
func NewPattern(text []byte) *Pattern {
	lower := make([]byte, len(text))
	hasMixed := false
	for i, b := range text {
		lb := util.ToLower(b)
		lower[i] = lb
		if lb != b {
			hasMixed = true
		}
	}

	successive := make([]RejectionFilter, len(lower))
	var running RejectionFilter
	for i := len(lower) - 1; i >= 0; i-- {
		running.UnionByte(lower[i])
		successive[i] = running
	}

	return &Pattern{
		mixedcaseBytes: text,
		lowercaseBytes: lower,
		hasMixedcase:   hasMixed,
		filter:         FromLowercaseBytes(lower),
		successive:     successive,
	}
}

// Len returns the pattern length in bytes.
func (p *Pattern) Len() int { return len(p.lowercaseBytes) }

// IsEmpty reports whether the pattern has zero length.
func (p *Pattern) IsEmpty() bool { return len(p.lowercaseBytes) == 0 }

// Lowercase returns the pattern's lowercased bytes.
func (p *Pattern) Lowercase() []byte { return p.lowercaseBytes }

// Mixedcase returns the pattern's original-case bytes.
func (p *Pattern) Mixedcase() []byte { return p.mixedcaseBytes }

// HasMixedcase reports whether the pattern contains any uppercase byte.
func (p *Pattern) HasMixedcase() bool { return p.hasMixedcase }

// Filter returns the rejection filter over the whole pattern.
func (p *Pattern) Filter() RejectionFilter { return p.filter }

// SuccessiveFilter returns the union of bitFor(lowercaseBytes[i:]).
func (p *Pattern) SuccessiveFilter(i int) RejectionFilter {
	if i >= len(p.successive) {
		return RejectionFilter{}
	}
	return p.successive[i]
}

package algo

import "bytes"

// MatchStyle names which of the five fast strategies produced a match, so
// singleScore can special-case acronym matches (which zero out false
// starts and bad-short-match penalties).
type MatchStyle int

const (
	StyleNone MatchStyle = iota
	StyleLowercaseContinuous
	StyleAcronym
	StyleMixedcaseContinuous
	StyleMixedcaseGreedy
	StyleLowercaseGreedy
)

// MatchLocation returns the index of the first candidate byte that
// lowercase-equals pattern[0], provided the remainder of the pattern can
// be greedily matched in order (case-insensitively) from there. An empty
// pattern always matches at 0.
func MatchLocation(pattern *Pattern, ic *IndexedCandidate) (int, bool) {
	if pattern.IsEmpty() {
		return 0, true
	}
	if Match(pattern.Filter(), ic.Filter) == No {
		return 0, false
	}
	p := pattern.Lowercase()
	c := ic.Lower
	for start := 0; start <= len(c)-len(p); start++ {
		if c[start] != p[0] {
			continue
		}
		pi, ci := 1, start+1
		for pi < len(p) && ci < len(c) {
			if c[ci] == p[pi] {
				pi++
			}
			ci++
		}
		if pi == len(p) {
			return start, true
		}
	}
	return 0, false
}

// lowercaseContinuous finds pattern.Lowercase() as a contiguous substring
// of the candidate, case-insensitively, from startOffset onward.
func lowercaseContinuous(pattern *Pattern, ic *IndexedCandidate, startOffset int) ([]ByteRange, bool) {
	p := pattern.Lowercase()
	if len(p) == 0 {
		return nil, false
	}
	idx := bytes.Index(ic.Lower[startOffset:], p)
	if idx < 0 {
		return nil, false
	}
	lo := startOffset + idx
	return []ByteRange{{lo, lo + len(p)}}, true
}

// mixedcaseContinuous finds pattern.Mixedcase() as a contiguous,
// case-sensitive substring from startOffset onward.
func mixedcaseContinuous(pattern *Pattern, ic *IndexedCandidate, startOffset int) ([]ByteRange, bool) {
	p := pattern.Mixedcase()
	if len(p) == 0 {
		return nil, false
	}
	idx := bytes.Index(ic.Bytes[startOffset:], p)
	if idx < 0 {
		return nil, false
	}
	lo := startOffset + idx
	return []ByteRange{{lo, lo + len(p)}}, true
}

// greedyMatch walks the candidate once, matching pattern bytes in order
// using eq, and coalesces consecutive matched candidate bytes into runs.
func greedyMatch(pattern []byte, candidate []byte, startOffset int, eq func(a, b byte) bool) ([]ByteRange, bool) {
	if len(pattern) == 0 {
		return nil, false
	}
	var ranges []ByteRange
	pi := 0
	for ci := startOffset; ci < len(candidate) && pi < len(pattern); ci++ {
		if !eq(candidate[ci], pattern[pi]) {
			continue
		}
		if len(ranges) > 0 && ranges[len(ranges)-1].Hi == ci {
			ranges[len(ranges)-1].Hi = ci + 1
		} else {
			ranges = append(ranges, ByteRange{ci, ci + 1})
		}
		pi++
	}
	if pi != len(pattern) {
		return nil, false
	}
	return ranges, true
}

func eqCaseSensitive(a, b byte) bool { return a == b }

// mixedcaseGreedy greedily matches the pattern in order, case-sensitively.
func mixedcaseGreedy(pattern *Pattern, ic *IndexedCandidate, startOffset int) ([]ByteRange, bool) {
	return greedyMatch(pattern.Mixedcase(), ic.Bytes, startOffset, eqCaseSensitive)
}

// lowercaseGreedy greedily matches the pattern in order, case-insensitively.
func lowercaseGreedy(pattern *Pattern, ic *IndexedCandidate, startOffset int) ([]ByteRange, bool) {
	return greedyMatch(pattern.Lowercase(), ic.Lower, startOffset, eqCaseSensitive)
}

// acronymMatch walks candidate tokens, matching each against the leading
// byte(s) of the pattern still unconsumed. A token contributes a single
// leading byte unless it is an all-uppercase run (an "NSURL"-style token)
// or, when the content type allows multi-character acronym segments past
// the base name, the token lies at or beyond the base name boundary — in
// either case the token may contribute more than one leading byte. The
// very first token may be skipped outright when it is itself an
// all-uppercase run, and any single-byte delimiter token is always
// skippable, mirroring how Tokenize isolates delimiters into their own
// one-byte tokens.
func acronymMatch(pattern *Pattern, ic *IndexedCandidate, params ContentTypeParams) ([]ByteRange, bool) {
	if pattern.Len() < 3 || !params.EligibleForAcronym || !ic.Tok.HasNonUppercaseNonDelimiterBytes {
		return nil, false
	}

	tokenLimit := len(ic.Tok.Tokens)
	if params.AcronymMustBeInBase {
		tokenLimit = ic.Tok.FirstNonBaseNameTokenIndex()
	}
	afterBaseIdx := ic.Tok.FirstNonBaseNameTokenIndex()

	p := pattern.Lowercase()
	pi := 0
	var ranges []ByteRange

	for ti := 0; ti < tokenLimit && pi < len(p); ti++ {
		tok := ic.Tok.Tokens[ti]
		start := ic.TokenStart(ti)

		if ti == 0 && tok.AllUppercase {
			continue
		}
		if tok.Length == 1 && isDelimiterByte(ic.Bytes[start]) {
			continue
		}

		maxConsume := 1
		if tok.AllUppercase || (params.AcronymMultiAfterBase && ti >= afterBaseIdx) {
			maxConsume = tok.Length
		}

		consumed := 0
		for consumed < maxConsume && consumed < tok.Length && pi < len(p) {
			if ic.Lower[start+consumed] != p[pi] {
				break
			}
			consumed++
			pi++
		}
		if consumed == 0 {
			return nil, false
		}
		ranges = append(ranges, ByteRange{start, start + consumed})
	}

	if pi != len(p) {
		return nil, false
	}
	return ranges, true
}

func isDelimiterByte(b byte) bool {
	return !(b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9'))
}

// fastMatch runs the five match-style strategies in their specified order
// and returns the ranges and style of the first one to succeed.
func fastMatch(pattern *Pattern, ic *IndexedCandidate, params ContentTypeParams, startOffset int) ([]ByteRange, MatchStyle) {
	if ranges, ok := lowercaseContinuous(pattern, ic, startOffset); ok {
		return ranges, StyleLowercaseContinuous
	}
	if ranges, ok := acronymMatch(pattern, ic, params); ok {
		return ranges, StyleAcronym
	}
	if ranges, ok := mixedcaseContinuous(pattern, ic, startOffset); ok {
		return ranges, StyleMixedcaseContinuous
	}
	if ranges, ok := mixedcaseGreedy(pattern, ic, startOffset); ok {
		return ranges, StyleMixedcaseGreedy
	}
	if ranges, ok := lowercaseGreedy(pattern, ic, startOffset); ok {
		return ranges, StyleLowercaseGreedy
	}
	return nil, StyleNone
}

package fuzzyrank

import "github.com/fuzzyrank/fuzzyrank/algo"

// Pattern is the user-typed search text, immutable once built. It wraps
// algo.Pattern: the engine's matching core stays content-type-blind, so
// this thin wrapper is where a ContentType is resolved to the parameter
// table algo.MatchAndScore needs.
type Pattern struct {
	inner *algo.Pattern
	text  string
}

// NewPattern builds a Pattern from the user's typed text.
func NewPattern(text string) *Pattern {
	return &Pattern{inner: algo.NewPattern([]byte(text)), text: text}
}

// AsString returns the pattern's original text.
func (p *Pattern) AsString() string {
	return p.text
}

// IsEmpty reports whether the pattern has zero length.
func (p *Pattern) IsEmpty() bool {
	return p.inner.IsEmpty()
}

// Score matches candidateBytes against the pattern under contentType and
// precision, returning only the scalar text_component of the match. A
// non-match scores as the worst possible value; callers that need to
// distinguish "no match" from "matched but scored low" should use
// ScoreWithRanges instead.
func (p *Pattern) Score(candidateBytes []byte, contentType ContentType, precision algo.Precision) float64 {
	score, _, ok := algo.MatchAndScore(p.inner, candidateBytes, contentType.Params(), precision, nil)
	if !ok {
		return algo.WorstPossibleScore().Value
	}
	return score.Value
}

// ScoreWithRanges matches and scores candidateBytes the same way Score
// does, additionally returning the matched byte ranges when
// captureMatchingRanges is set (callers that only need the scalar can skip
// the range allocation).
func (p *Pattern) ScoreWithRanges(candidateBytes []byte, contentType ContentType, precision algo.Precision, captureMatchingRanges bool) (algo.TextScore, []algo.ByteRange, bool) {
	score, ranges, ok := algo.MatchAndScore(p.inner, candidateBytes, contentType.Params(), precision, nil)
	if !captureMatchingRanges {
		ranges = nil
	}
	return score, ranges, ok
}

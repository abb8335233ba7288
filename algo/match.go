package algo

import "github.com/fuzzyrank/fuzzyrank/internal/util"

// MatchAndScore is the package's single entry point: it locates the best
// match of pattern against a candidate's bytes under the given content-type
// parameters, scores it, and returns the matched ranges alongside the
// score. ok is false when the rejection filter or an exhaustive scan proves
// no match exists at all.
//
// At Fast precision only the five match-style strategies run, in the fixed
// priority order fastMatch enforces. At Thorough precision the budgeted
// backtracking search also runs; its candidate partition competes against
// the fast match-style ranges rescored at thorough precision, and the
// better of the two wins. Rescoring the fast ranges at thorough precision
// (rather than reusing the fast-precision score) is what the budget-
// exhaustion fallback relies on to guarantee thorough never scores below
// fast for the same candidate.
//
// slab, when non-nil, backs the int and int32 scratch arrays this call
// allocates (token offsets, the thorough search's jump table and
// successive-filter masks);
// callers that score many candidates in sequence should reuse the same
// slab across calls, the way a ScoredMatchSelector worker does.
func MatchAndScore(pattern *Pattern, candidateBytes []byte, params ContentTypeParams, precision Precision, slab *util.Slab) (TextScore, []ByteRange, bool) {
	if pattern.IsEmpty() {
		return TextScore{Value: 1.0, FalseStarts: 0}, nil, true
	}

	ic := NewIndexedCandidate(candidateBytes, params, slab)

	start, ok := MatchLocation(pattern, ic)
	if !ok {
		return WorstPossibleScore(), nil, false
	}

	fastRanges, style := fastMatch(pattern, ic, params, start)
	if style == StyleNone {
		return WorstPossibleScore(), nil, false
	}

	if precision == Fast {
		return singleScore(pattern, ic, fastRanges, params, Fast, style), fastRanges, true
	}

	bestRanges := fastRanges
	bestScore := singleScore(pattern, ic, fastRanges, params, Thorough, style)

	if thoroughRanges, thoroughStyle, found := thoroughSearch(pattern, ic, params); found {
		thoroughScore := singleScore(pattern, ic, thoroughRanges, params, Thorough, thoroughStyle)
		if thoroughScore.Better(bestScore) {
			bestScore, bestRanges = thoroughScore, thoroughRanges
		}
	}
	return bestScore, bestRanges, true
}

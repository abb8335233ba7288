// Package algo implements the content-type-parameterized fuzzy matching
// and scoring engine: rejection filtering, tokenization, the fast
// single-strategy matcher, the budgeted thorough backtracking search, and
// the scalar scoring function they all feed into.
//
// It deliberately knows nothing about ContentType as a named enum — the
// caller (package fuzzyrank) resolves a ContentType to a ContentTypeParams
// value and passes it in, the same way fzf's Algo functions take
// caseSensitive/normalize/forward as plain booleans instead of reaching
// into a Pattern or Options struct.
package algo

import "math"

// Precision selects between the single-strategy fast matcher and the
// budgeted thorough backtracking search.
type Precision int

const (
	Fast Precision = iota
	Thorough
)

// ThoroughSearchBudget bounds the number of step-stack pops the thorough
// search performs per candidate before it falls back to the fast
// match-style strategies.
const ThoroughSearchBudget = 5000

// ByteRange is a half-open [Lo, Hi) matched range within a candidate.
type ByteRange struct {
	Lo, Hi int
}

func (r ByteRange) Len() int { return r.Hi - r.Lo }

// TextScore is the result of scoring one candidate against one pattern.
// The zero value is never a valid score; use WorstPossibleScore for a
// sentinel that compares as worse than anything real.
type TextScore struct {
	Value      float64
	FalseStarts uint32
}

// WorstPossibleScore returns a TextScore no real match can ever beat.
func WorstPossibleScore() TextScore {
	return TextScore{Value: math.Inf(-1), FalseStarts: math.MaxUint32}
}

// Better reports whether a outranks b under the engine's total order:
// higher Value wins; ties broken by fewer FalseStarts.
func (a TextScore) Better(b TextScore) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	return a.FalseStarts < b.FalseStarts
}

// ContentTypeParams is the per-content-type scoring policy table from the
// engine's external interface (see the content-type parameter table):
// every tunable the scalar scoring function and the acronym strategy
// consult, resolved by the caller before a match attempt so this package
// never has to know ContentType's name, only its parameters.
type ContentTypeParams struct {
	PrefixMatchBonus         float64
	FullMatchBonus           float64
	FullBaseNameMatchBonus   float64
	BaseNameAffinity         Affinity
	BaseNameSeparator        byte
	EligibleForAcronym       bool
	AcronymMultiAfterBase    bool
	AcronymMustBeInBase      bool
	ContentAfterBaseIsTrivial bool
	EligibleForTypeOverLocal bool
}

// LocalVariableToGlobalTypeScoreRatio is the tunable named constant spec §9
// leaves unspecified beyond ">1". fzf's own bonusFirstCharMultiplier uses
// the same order of magnitude (2) for an analogous "this position matters
// more" amplifier, so the default here follows suit: large enough to
// reliably separate NSString from nsstring, small enough the gap penalty
// still dominates for long-distance matches.
var LocalVariableToGlobalTypeScoreRatio = 2.0

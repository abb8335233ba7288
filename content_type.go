package fuzzyrank

import "github.com/fuzzyrank/fuzzyrank/algo"

// ContentType is the closed tag set driving every content-type-dependent
// scoring table: a code-completion symbol, a file name, a project-wide
// symbol, or a catch-all for anything else.
type ContentType int

const (
	CodeCompletionSymbol ContentType = iota
	FileName
	ProjectSymbol
	Unknown
)

// String names a ContentType the way a log line or test failure would want
// to see it.
func (c ContentType) String() string {
	switch c {
	case CodeCompletionSymbol:
		return "codeCompletionSymbol"
	case FileName:
		return "fileName"
	case ProjectSymbol:
		return "projectSymbol"
	default:
		return "unknown"
	}
}

// contentTypeParams is the per-variant data table: prefer a single array
// indexed by the enum's discriminant over virtual dispatch, since the set
// of content types is closed and never grows at runtime.
var contentTypeParams = [...]algo.ContentTypeParams{
	CodeCompletionSymbol: {
		PrefixMatchBonus:          2.00,
		FullMatchBonus:            1.00,
		FullBaseNameMatchBonus:    1.00,
		BaseNameAffinity:          algo.AffinityFirst,
		BaseNameSeparator:         '(',
		EligibleForAcronym:        true,
		AcronymMultiAfterBase:     false,
		AcronymMustBeInBase:       true,
		ContentAfterBaseIsTrivial: false,
		EligibleForTypeOverLocal:  true,
	},
	FileName: {
		PrefixMatchBonus:          1.05,
		FullMatchBonus:            1.50,
		FullBaseNameMatchBonus:    1.50,
		BaseNameAffinity:          algo.AffinityLast,
		BaseNameSeparator:         '.',
		EligibleForAcronym:        true,
		AcronymMultiAfterBase:     true,
		AcronymMustBeInBase:       false,
		ContentAfterBaseIsTrivial: true,
		EligibleForTypeOverLocal:  false,
	},
	ProjectSymbol: {
		PrefixMatchBonus:          1.05,
		FullMatchBonus:            1.50,
		FullBaseNameMatchBonus:    1.50,
		BaseNameAffinity:          algo.AffinityFirst,
		BaseNameSeparator:         '(',
		EligibleForAcronym:        true,
		AcronymMultiAfterBase:     false,
		AcronymMustBeInBase:       true,
		ContentAfterBaseIsTrivial: false,
		EligibleForTypeOverLocal:  false,
	},
	Unknown: {
		PrefixMatchBonus:          2.00,
		FullMatchBonus:            1.00,
		FullBaseNameMatchBonus:    1.00,
		BaseNameAffinity:          algo.AffinityLast,
		BaseNameSeparator:         0,
		EligibleForAcronym:        false,
		AcronymMultiAfterBase:     false,
		AcronymMustBeInBase:       false,
		ContentAfterBaseIsTrivial: false,
		EligibleForTypeOverLocal:  false,
	},
}

// Params returns the scoring policy table entry for c.
func (c ContentType) Params() algo.ContentTypeParams {
	return contentTypeParams[c]
}

// bestRejectedTextScoreByPatternLength is indexed by pattern length in
// bytes, clamped to the last entry for anything longer. It is the floor a
// candidate's text score must clear to survive the thorough cutoff,
// regardless of how close it is to the top score.
var bestRejectedTextScoreByPatternLength = [...]float64{
	0.0, 0.0,
	2.900400881379344, 2.900400881379344, 2.900400881379344, 2.900400881379344,
	2.900400881379344, 2.900400881379344, 2.900400881379344, 2.900400881379344,
	2.900400881379344,
}

func bestRejectedTextScore(patternUTF8Length int) float64 {
	idx := patternUTF8Length
	if idx > len(bestRejectedTextScoreByPatternLength)-1 {
		idx = len(bestRejectedTextScoreByPatternLength) - 1
	}
	return bestRejectedTextScoreByPatternLength[idx]
}

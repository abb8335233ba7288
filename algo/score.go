package algo

import (
	"math"

	"github.com/fuzzyrank/fuzzyrank/internal/util"
)

// singleScore computes the scalar score for one already-located match, given
// the ranges the chosen match style (or the thorough search) produced. It is
// the single place every additive and multiplicative bonus/penalty from the
// scoring model is applied, mirroring fzf's bonusFor + its accumulation loop
// in algo.FuzzyMatchV2, generalized from "one bonus per matched byte" to
// "one scalar per whole match" since this engine ranks candidates rather
// than highlighting one line of terminal output.
func singleScore(pattern *Pattern, ic *IndexedCandidate, ranges []ByteRange, params ContentTypeParams, precision Precision, style MatchStyle) TextScore {
	if len(ranges) == 0 {
		return TextScore{Value: 0, FalseStarts: 0}
	}

	L := len(ic.Bytes)
	P := pattern.Len()
	mixedPattern := pattern.Mixedcase()

	leadingCaseMatchableCount := L
	if params.ContentAfterBaseIsTrivial {
		leadingCaseMatchableCount = ic.Tok.BaseNameLength
	}

	uppercaseMatches := 0
	uppercaseMismatches := 0
	anyCaseMatches := 0
	isPrefixUppercaseMatch := false

	patternPos := 0
	for _, r := range ranges {
		for c := r.Lo; c < r.Hi; c++ {
			if c < leadingCaseMatchableCount {
				if ic.Bytes[c] == mixedPattern[patternPos] {
					anyCaseMatches++
					if util.IsUpper(ic.Bytes[c]) {
						uppercaseMatches++
						if patternPos == 0 {
							isPrefixUppercaseMatch = true
						}
					}
				}
			} else {
				uppercaseMismatches++
			}
			patternPos++
		}
	}

	score := 0.0
	falseStarts := 0
	badShortMatches := 0
	allRunsStartOnWordStartOrUppercase := true
	incompletelyMatchedTokens := 0

	patternCharsConsumed := 0
	for _, r := range ranges {
		matchedTokenPrefixThisRange := false
		i := r.Lo
		first := true
		for i < r.Hi {
			addr := ic.Tok.ByteAddr[i]
			tok := ic.Tok.Tokens[addr.TokenIndex]
			tokenStart := i - addr.IndexInToken
			segEnd := tokenStart + tok.Length
			if segEnd > r.Hi {
				segEnd = r.Hi
			}
			coveredCharacters := segEnd - i
			coveredWholeToken := addr.IndexInToken == 0 && coveredCharacters == tok.Length

			patternCharsConsumed += coveredCharacters
			laterMatchesExist := patternCharsConsumed < P
			incompleteMatch := !coveredWholeToken && laterMatchesExist

			if incompleteMatch || addr.IndexInToken != 0 {
				falseStarts++
			}
			if incompleteMatch && coveredCharacters <= 2 {
				badShortMatches++
			}
			if addr.IndexInToken == 0 {
				matchedTokenPrefixThisRange = true
			}
			if first {
				if addr.IndexInToken != 0 && !util.IsUpper(ic.Bytes[i]) {
					allRunsStartOnWordStartOrUppercase = false
				}
				first = false
			}
			if !coveredWholeToken {
				incompletelyMatchedTokens++
			}
			i = segEnd
		}
		if r.Len() > 1 || matchedTokenPrefixThisRange {
			score += math.Pow(float64(r.Len()), 1.5)
		}
	}

	if ranges[0].Lo > ic.Tok.BaseNameLength && L > 256 {
		falseStarts++
		score *= 0.75
	}

	if style == StyleAcronym {
		badShortMatches = 0
		falseStarts = 0
	}

	singleRange := len(ranges) == 1
	if singleRange && ranges[0].Lo == 0 && ranges[0].Hi == L {
		score *= params.FullMatchBonus
	} else if singleRange && ranges[0].Lo == 0 && ranges[0].Hi == ic.Tok.BaseNameLength {
		score *= params.FullBaseNameMatchBonus
	}

	score += float64(anyCaseMatches) / float64(leadingCaseMatchableCount+1)
	score += 5 * float64(uppercaseMatches)
	if pattern.HasMixedcase() {
		score += -1.5 * float64(uppercaseMismatches)
	}
	score -= 3 * float64(badShortMatches)
	invLen := 1 / float64(L+1)
	score += math.Pow(invLen, 4)
	score += 1.5 / float64(len(ic.Tok.Tokens)+1)

	if singleRange && ranges[0].Lo == 0 {
		score *= params.PrefixMatchBonus
		looksLikeType := ic.Tok.BaseNameLength == L && ic.Tok.HasNonUppercaseNonDelimiterBytes
		if isPrefixUppercaseMatch && anyCaseMatches == P && looksLikeType && params.EligibleForTypeOverLocal {
			score *= LocalVariableToGlobalTypeScoreRatio
		}
	}
	if singleRange {
		score += 2
	}
	if ranges[0].Lo == 0 {
		score += 2
	}

	if precision == Thorough {
		if !allRunsStartOnWordStartOrUppercase {
			score /= 2
		}
		if incompletelyMatchedTokens > 1 && style != StyleAcronym {
			score /= 2
		}
	}

	return TextScore{Value: score, FalseStarts: uint32(falseStarts)}
}

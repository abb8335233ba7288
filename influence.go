package fuzzyrank

import (
	"strings"

	"github.com/fuzzyrank/fuzzyrank/algo"
	"github.com/fuzzyrank/fuzzyrank/internal/util"
)

// TokenizeInfluencing splits each identifier into its tokens using the same
// tokenizer the matcher uses, for use as influencing identifiers. When
// filterLowSignal is set, tokens shorter than 4 ASCII bytes or equal
// (case-insensitively) to "from"/"with" are dropped — common argument-label
// filler that would otherwise inflate every candidate's influence score.
func TokenizeInfluencing(identifiers []string, filterLowSignal bool) [][]string {
	out := make([][]string, 0, len(identifiers))
	for _, id := range identifiers {
		tok := algo.Tokenize([]byte(id), 0, algo.AffinityFirst)
		tokens := make([]string, 0, len(tok.Tokens))
		off := 0
		for _, t := range tok.Tokens {
			word := id[off : off+t.Length]
			off += t.Length
			if filterLowSignal && isLowSignalToken(word) {
				continue
			}
			tokens = append(tokens, word)
		}
		out = append(out, tokens)
	}
	return out
}

func isLowSignalToken(word string) bool {
	if len(word) < 4 {
		return true
	}
	lower := strings.ToLower(word)
	return lower == "from" || lower == "with"
}

// InfluenceScorer boosts candidates that share tokens with a set of
// contextual "influencing" identifiers — argument labels or nearby
// identifiers the caller expects the answer to resemble.
type InfluenceScorer struct {
	identifiers [][]string
	weights     []float64
}

// NewInfluenceScorer builds a scorer from already-tokenized influencing
// identifiers (see TokenizeInfluencing), computing each identifier's weight
// once: the first gets scale 1.0, and each later identifier's scale tapers
// linearly down to 0.9375 for the last one, since the caller's earlier
// influencers are assumed to be the more contextually relevant.
func NewInfluenceScorer(identifiers [][]string) *InfluenceScorer {
	weights := make([]float64, len(identifiers))
	n := len(identifiers)
	for i := range identifiers {
		if n <= 1 {
			weights[i] = 1.0
			continue
		}
		weights[i] = 1 - 0.0625*(float64(i)/float64(n-1))
	}
	return &InfluenceScorer{identifiers: identifiers, weights: weights}
}

// Score returns the candidate's influence multiplier in [0,1]: the best
// score across every influencing identifier, each identifier's score being
// the fraction of its tokens present as a whole candidate token.
func (s *InfluenceScorer) Score(candidateBytes []byte, contentType ContentType) float64 {
	if len(s.identifiers) == 0 {
		return 0
	}

	params := contentType.Params()
	tok := algo.Tokenize(candidateBytes, params.BaseNameSeparator, params.BaseNameAffinity)
	candidateTokens := make([][]byte, len(tok.Tokens))
	off := 0
	for i, t := range tok.Tokens {
		candidateTokens[i] = candidateBytes[off : off+t.Length]
		off += t.Length
	}

	best := 0.0
	for i, identifier := range s.identifiers {
		score := scoreOneInfluencer(identifier, candidateTokens) * s.weights[i]
		if score > best {
			best = score
		}
	}
	return best
}

func scoreOneInfluencer(identifierTokens []string, candidateTokens [][]byte) float64 {
	n := len(identifierTokens)
	if n == 0 {
		return 0
	}
	matched := 0
	for _, it := range identifierTokens {
		for _, ct := range candidateTokens {
			if tokensEqualFold(ct, it) {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return 0.75 + float64(matched-1)/float64(n-1)*0.25
}

// tokensEqualFold reports whether candidate token ct equals identifier
// token it under ASCII case folding, checking length and the first byte
// before the full scan so a mismatch fails fast.
func tokensEqualFold(ct []byte, it string) bool {
	if len(ct) != len(it) {
		return false
	}
	if len(ct) == 0 {
		return true
	}
	if !util.EqualFold(ct[0], it[0]) {
		return false
	}
	for i := 1; i < len(ct); i++ {
		if !util.EqualFold(ct[i], it[i]) {
			return false
		}
	}
	return true
}

package fuzzyrank

import (
	"bytes"
	"sort"
	"sync"

	"github.com/fuzzyrank/fuzzyrank/algo"
)

// MatchCollator drives final selection from a caller-scored match set: it
// assigns dense group ids, branches between a cheap semantic-only cut and
// an expensive thorough rescore, applies contextual influence, enforces the
// cutoffs, and produces a single deterministically sorted Selection.
// Grounded on fzf's Merger (src/merger.go): a stateless pass that turns
// several locally-ranked lists into one globally-ordered view, generalized
// here from "merge already-sorted slices" to "rescore, cut, then sort".
type MatchCollator struct{}

// NewMatchCollator returns a ready-to-use collator. It carries no state of
// its own; every call is independent.
func NewMatchCollator() *MatchCollator {
	return &MatchCollator{}
}

// SelectBestMatches runs the full collation pipeline described in the
// engine's external interface and returns the final ordered Selection.
// maxItemsForExpensiveSelection of 0 selects the engine's documented
// default of 100.
func (c *MatchCollator) SelectBestMatches(
	matches []Match,
	batches []*CandidateBatch,
	pattern *Pattern,
	influencingTokenizedIdentifiers [][]string,
	tieBreaker TieBreaker,
	maxItemsForExpensiveSelection int,
) Selection {
	if maxItemsForExpensiveSelection <= 0 {
		maxItemsForExpensiveSelection = defaultMaximumNumberOfItemsForExpensiveSelection
	}

	rescored := assignDenseGroupIDs(matches, batches)
	refreshGroupScores(rescored)

	patternLen := len([]byte(pattern.AsString()))
	precision := algo.Fast

	if patternLen >= minimumPatternLengthToAlwaysRescoreWithThoroughPrecision || len(rescored) <= maxItemsForExpensiveSelection {
		precision = algo.Thorough

		if len(rescored) > maxItemsForExpensiveSelection {
			sort.Slice(rescored, func(i, j int) bool {
				if rescored[i].GroupScore != rescored[j].GroupScore {
					return rescored[i].GroupScore > rescored[j].GroupScore
				}
				return rescored[i].IndividualScore.Value() > rescored[j].IndividualScore.Value()
			})
			rescored = rescored[:maxItemsForExpensiveSelection]
		}

		rescoreThorough(rescored, matches, batches, pattern)
		refreshGroupScores(rescored)
		rescored = applyThoroughCutoffs(rescored, patternLen)
	} else {
		rescored = applyFastCutoff(rescored, patternLen)
	}

	if len(influencingTokenizedIdentifiers) > 0 {
		applyInfluence(rescored, matches, batches, influencingTokenizedIdentifiers)
		refreshGroupScores(rescored)
	}

	sortFinal(rescored, matches, batches, tieBreaker, len(rescored) <= maxItemsForExpensiveSelection)

	ordered := make([]Match, len(rescored))
	for i, rm := range rescored {
		ordered[i] = matches[rm.OriginalMatchIndex]
	}

	return Selection{Precision: precision, Matches: ordered}
}

// TokenizeInfluencing is exposed on the collator too, mirroring the
// engine's interface grouping both entry points under MatchCollator even
// though this one needs no collator state.
func (c *MatchCollator) TokenizeInfluencing(identifiers []string, filterLowSignal bool) [][]string {
	return TokenizeInfluencing(identifiers, filterLowSignal)
}

func assignDenseGroupIDs(matches []Match, batches []*CandidateBatch) []*RescoredMatch {
	rescored := make([]*RescoredMatch, len(matches))
	perBatchGroups := make([]map[uint64]int, len(batches))
	for i := range perBatchGroups {
		perBatchGroups[i] = make(map[uint64]int)
	}
	nextDenseID := 0

	for i, m := range matches {
		dense := -1
		if m.GroupID != nil {
			groups := perBatchGroups[m.BatchIndex]
			if id, ok := groups[*m.GroupID]; ok {
				dense = id
			} else {
				dense = nextDenseID
				groups[*m.GroupID] = dense
				nextDenseID++
			}
		}
		rescored[i] = &RescoredMatch{
			OriginalMatchIndex: i,
			TextIndex:          m.CandidateIndex,
			DenseGroupID:       dense,
			IndividualScore:    m.Score,
			FalseStarts:        m.Score.FalseStarts,
		}
	}
	return rescored
}

func refreshGroupScores(rescored []*RescoredMatch) {
	groupBest := make(map[int]float64)
	for _, rm := range rescored {
		if rm.DenseGroupID < 0 {
			continue
		}
		v := rm.IndividualScore.Value()
		if best, ok := groupBest[rm.DenseGroupID]; !ok || v > best {
			groupBest[rm.DenseGroupID] = v
		}
	}
	for _, rm := range rescored {
		if rm.DenseGroupID < 0 {
			rm.GroupScore = rm.IndividualScore.Value()
			continue
		}
		rm.GroupScore = groupBest[rm.DenseGroupID]
	}
}

func rescoreThorough(rescored []*RescoredMatch, matches []Match, batches []*CandidateBatch, pattern *Pattern) {
	var wg sync.WaitGroup
	for _, rm := range rescored {
		wg.Add(1)
		go func(rm *RescoredMatch) {
			defer wg.Done()
			m := matches[rm.OriginalMatchIndex]
			candidateBytes := batches[m.BatchIndex].BytesAt(m.CandidateIndex)
			contentType := batches[m.BatchIndex].CandidateAt(m.CandidateIndex).ContentType
			score, _, ok := pattern.ScoreWithRanges(candidateBytes, contentType, algo.Thorough, false)
			if !ok {
				rm.IndividualScore.TextComponent = algo.WorstPossibleScore().Value
				rm.FalseStarts = algo.WorstPossibleScore().FalseStarts
				return
			}
			rm.IndividualScore.TextComponent = score.Value
			rm.FalseStarts = score.FalseStarts
		}(rm)
	}
	wg.Wait()
}

func applyThoroughCutoffs(rescored []*RescoredMatch, patternLen int) []*RescoredMatch {
	if len(rescored) == 0 {
		return rescored
	}
	top := rescored[0]
	for _, rm := range rescored[1:] {
		if rm.IndividualScore.Value() > top.IndividualScore.Value() {
			top = rm
		}
	}

	ratio := patternLen
	if ratio > 4 {
		ratio = 4
	}
	if ratio < 1 {
		ratio = 1
	}
	cutoffRatio := (2.0 / 3.0) * (float64(ratio) / 4.0)
	compositeCutoff := cutoffRatio * top.IndividualScore.Value()
	semanticCutoff := top.IndividualScore.SemanticComponent / 3
	floor := bestRejectedTextScore(patternLen)

	kept := rescored[:0]
	for _, rm := range rescored {
		if rm.IndividualScore.TextComponent <= floor {
			continue
		}
		if rm.FalseStarts > maxFalseStarts {
			continue
		}
		if rm.IndividualScore.Value() >= compositeCutoff {
			kept = append(kept, rm)
			continue
		}
		if rm.FalseStarts <= top.FalseStarts && rm.IndividualScore.SemanticComponent >= semanticCutoff {
			kept = append(kept, rm)
		}
	}
	return kept
}

func applyFastCutoff(rescored []*RescoredMatch, patternLen int) []*RescoredMatch {
	if len(rescored) == 0 {
		return rescored
	}
	topSem := rescored[0].IndividualScore.SemanticComponent
	for _, rm := range rescored[1:] {
		if rm.IndividualScore.SemanticComponent > topSem {
			topSem = rm.IndividualScore.SemanticComponent
		}
	}
	ratio := patternLen
	if ratio > 4 {
		ratio = 4
	}
	if ratio < 1 {
		ratio = 1
	}
	cutoffRatio := (2.0 / 3.0) * (float64(ratio) / 4.0)

	kept := rescored[:0]
	for _, rm := range rescored {
		if rm.IndividualScore.SemanticComponent >= cutoffRatio*topSem {
			kept = append(kept, rm)
		}
	}
	return kept
}

func applyInfluence(rescored []*RescoredMatch, matches []Match, batches []*CandidateBatch, influencers [][]string) {
	scorer := NewInfluenceScorer(influencers)
	var wg sync.WaitGroup
	for _, rm := range rescored {
		wg.Add(1)
		go func(rm *RescoredMatch) {
			defer wg.Done()
			m := matches[rm.OriginalMatchIndex]
			candidate := batches[m.BatchIndex].CandidateAt(m.CandidateIndex)
			influence := scorer.Score(candidate.Bytes, candidate.ContentType)
			rm.IndividualScore.TextComponent *= 1 + influence*maxInfluenceBonus
		}(rm)
	}
	wg.Wait()
}

func sortFinal(rescored []*RescoredMatch, matches []Match, batches []*CandidateBatch, tieBreaker TieBreaker, smallEnoughForTieBreaker bool) {
	sort.Slice(rescored, func(i, j int) bool {
		a, b := rescored[i], rescored[j]
		if a.GroupScore != b.GroupScore {
			return a.GroupScore > b.GroupScore
		}
		if a.IndividualScore.Value() != b.IndividualScore.Value() {
			return a.IndividualScore.Value() > b.IndividualScore.Value()
		}

		am, bm := matches[a.OriginalMatchIndex], matches[b.OriginalMatchIndex]
		aBytes := batches[am.BatchIndex].BytesAt(am.CandidateIndex)
		bBytes := batches[bm.BatchIndex].BytesAt(bm.CandidateIndex)
		if c := bytes.Compare(aBytes, bBytes); c != 0 {
			return c < 0
		}

		if smallEnoughForTieBreaker && tieBreaker != nil {
			if tieBreaker(am, bm) {
				return true
			}
			if tieBreaker(bm, am) {
				return false
			}
		}

		return a.OriginalMatchIndex < b.OriginalMatchIndex
	})
}

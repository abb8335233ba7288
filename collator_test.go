package fuzzyrank

import (
	"testing"

	"github.com/fuzzyrank/fuzzyrank/algo"
)

func scoreCandidate(pattern *Pattern, batches []*CandidateBatch, batchIndex, candidateIndex int) CompletionScore {
	candidate := batches[batchIndex].CandidateAt(candidateIndex)
	score, _, ok := pattern.ScoreWithRanges(candidate.Bytes, candidate.ContentType, algo.Thorough, false)
	if !ok {
		return CompletionScore{TextComponent: 0, SemanticComponent: 1}
	}
	return CompletionScore{TextComponent: score.Value, SemanticComponent: 1, FalseStarts: score.FalseStarts}
}

func TestMatchCollatorInfluenceBonusReorders(t *testing.T) {
	a := NewCandidateBatch(0)
	a.Append([]byte("loadData()"), CodeCompletionSymbol)
	a.Append([]byte("loadFile()"), CodeCompletionSymbol)
	batches := []*CandidateBatch{a}

	pattern := NewPattern("load")
	matches := []Match{
		{Identifier: "loadData()", BatchIndex: 0, CandidateIndex: 0, Score: scoreCandidate(pattern, batches, 0, 0)},
		{Identifier: "loadFile()", BatchIndex: 0, CandidateIndex: 1, Score: scoreCandidate(pattern, batches, 0, 1)},
	}

	collator := NewMatchCollator()
	influencers := TokenizeInfluencing([]string{"data"}, false)
	selection := collator.SelectBestMatches(matches, batches, pattern, influencers, nil, 0)

	if len(selection.Matches) != 2 {
		t.Fatalf("Selection has %d matches, want 2", len(selection.Matches))
	}
	if selection.Matches[0].Identifier != "loadData()" {
		t.Fatalf("top match = %q, want loadData()", selection.Matches[0].Identifier)
	}
}

func TestMatchCollatorDeterministicSort(t *testing.T) {
	a := NewCandidateBatch(0)
	a.Append([]byte("alpha"), Unknown)
	a.Append([]byte("beta"), Unknown)
	batches := []*CandidateBatch{a}
	pattern := NewPattern("a")

	matches := []Match{
		{Identifier: "alpha", BatchIndex: 0, CandidateIndex: 0, Score: CompletionScore{TextComponent: 1, SemanticComponent: 1}},
		{Identifier: "beta", BatchIndex: 0, CandidateIndex: 1, Score: CompletionScore{TextComponent: 1, SemanticComponent: 1}},
	}

	collator := NewMatchCollator()
	first := collator.SelectBestMatches(matches, batches, pattern, nil, nil, 0)
	second := collator.SelectBestMatches(matches, batches, pattern, nil, nil, 0)

	if len(first.Matches) != len(second.Matches) {
		t.Fatalf("non-deterministic result lengths: %d vs %d", len(first.Matches), len(second.Matches))
	}
	for i := range first.Matches {
		if first.Matches[i].Identifier != second.Matches[i].Identifier {
			t.Fatalf("non-deterministic ordering at %d: %q vs %q", i, first.Matches[i].Identifier, second.Matches[i].Identifier)
		}
	}
}

func TestMatchCollatorGroupsSortTogether(t *testing.T) {
	a := NewCandidateBatch(0)
	a.Append([]byte("Widget"), CodeCompletionSymbol)
	a.Append([]byte("Widget.init()"), CodeCompletionSymbol)
	a.Append([]byte("myWidget"), CodeCompletionSymbol)
	batches := []*CandidateBatch{a}
	pattern := NewPattern("widget")

	group := uint64(1)
	matches := []Match{
		{Identifier: "Widget", BatchIndex: 0, CandidateIndex: 0, GroupID: &group, Score: CompletionScore{TextComponent: 5, SemanticComponent: 1}},
		{Identifier: "Widget.init()", BatchIndex: 0, CandidateIndex: 1, GroupID: &group, Score: CompletionScore{TextComponent: 10, SemanticComponent: 1}},
		{Identifier: "myWidget", BatchIndex: 0, CandidateIndex: 2, Score: CompletionScore{TextComponent: 7, SemanticComponent: 1}},
	}

	collator := NewMatchCollator()
	selection := collator.SelectBestMatches(matches, batches, pattern, nil, nil, 0)

	groupPositions := map[string]int{}
	for i, m := range selection.Matches {
		groupPositions[m.Identifier] = i
	}
	if groupPositions["Widget"] > groupPositions["myWidget"] && groupPositions["Widget.init()"] > groupPositions["myWidget"] {
		t.Fatalf("grouped matches with higher group score did not sort ahead of ungrouped match: %v", selection.Matches)
	}
}

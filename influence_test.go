package fuzzyrank

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizeInfluencingFiltersLowSignal(t *testing.T) {
	got := TokenizeInfluencing([]string{"loadDataFromCache"}, true)
	want := [][]string{{"load", "Data", "Cache"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("TokenizeInfluencing(loadDataFromCache) mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeInfluencingKeepsAllTokensWhenNotFiltering(t *testing.T) {
	got := TokenizeInfluencing([]string{"loadDataFromCache"}, false)
	want := [][]string{{"load", "Data", "From", "Cache"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("TokenizeInfluencing(loadDataFromCache, no filter) mismatch (-want +got):\n%s", diff)
	}
}

func TestInfluenceScorerBoostsMatchingCandidate(t *testing.T) {
	scorer := NewInfluenceScorer([][]string{{"data"}})
	dataScore := scorer.Score([]byte("loadData()"), CodeCompletionSymbol)
	fileScore := scorer.Score([]byte("loadFile()"), CodeCompletionSymbol)
	if dataScore <= fileScore {
		t.Fatalf("loadData() influence score %v should exceed loadFile() score %v", dataScore, fileScore)
	}
	if dataScore != 1.0 {
		t.Fatalf("single-token single-identifier match score = %v, want 1.0", dataScore)
	}
	if fileScore != 0.0 {
		t.Fatalf("non-matching candidate score = %v, want 0.0", fileScore)
	}
}

func TestInfluenceScorerEmptyIdentifiersScoresZero(t *testing.T) {
	scorer := NewInfluenceScorer(nil)
	if scorer.Score([]byte("anything"), Unknown) != 0 {
		t.Fatalf("empty influencer list should always score 0")
	}
}

func TestInfluenceScorerTapersAcrossIdentifiers(t *testing.T) {
	scorer := NewInfluenceScorer([][]string{{"data"}, {"data"}, {"data"}})
	if scorer.weights[0] != 1.0 {
		t.Fatalf("first identifier weight = %v, want 1.0", scorer.weights[0])
	}
	if scorer.weights[len(scorer.weights)-1] != 0.9375 {
		t.Fatalf("last identifier weight = %v, want 0.9375", scorer.weights[len(scorer.weights)-1])
	}
}

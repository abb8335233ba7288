package algo

import "testing"

func TestSingleScorePrefersFullMatch(t *testing.T) {
	params := symbolParams()
	full := NewIndexedCandidate([]byte("bar"), params, nil)
	partial := NewIndexedCandidate([]byte("fooBarBaz"), params, nil)
	pattern := NewPattern([]byte("bar"))

	fullRanges, fullStyle := fastMatch(pattern, full, params, 0)
	partialRanges, partialStyle := fastMatch(pattern, partial, params, 0)

	fullScore := singleScore(pattern, full, fullRanges, params, Fast, fullStyle)
	partialScore := singleScore(pattern, partial, partialRanges, params, Fast, partialStyle)

	if !fullScore.Better(partialScore) {
		t.Fatalf("full match score %v not better than partial match score %v", fullScore, partialScore)
	}
}

func TestSingleScorePenalizesFalseStarts(t *testing.T) {
	params := symbolParams()
	ic := NewIndexedCandidate([]byte("fooBarBaz"), params, nil)

	contiguous := []ByteRange{{3, 6}}
	scattered := []ByteRange{{0, 1}, {3, 4}, {6, 7}}

	contiguousScore := singleScore(NewPattern([]byte("bar")), ic, contiguous, params, Fast, StyleLowercaseContinuous)
	scatteredScore := singleScore(NewPattern([]byte("fbb")), ic, scattered, params, Fast, StyleLowercaseGreedy)

	if !contiguousScore.Better(scatteredScore) {
		t.Fatalf("contiguous score %v not better than scattered score %v", contiguousScore, scatteredScore)
	}
}

func TestSingleScoreEmptyRangesIsZero(t *testing.T) {
	params := symbolParams()
	ic := NewIndexedCandidate([]byte("foo"), params, nil)
	score := singleScore(NewPattern([]byte("foo")), ic, nil, params, Fast, StyleNone)
	if score.Value != 0 || score.FalseStarts != 0 {
		t.Fatalf("empty-range score = %v, want (0, 0)", score)
	}
}

func TestMatchAndScoreEmptyPatternMatchesEverything(t *testing.T) {
	params := symbolParams()
	score, ranges, ok := MatchAndScore(NewPattern(nil), []byte("anything"), params, Fast, nil)
	if !ok || ranges != nil || score.Value != 1.0 || score.FalseStarts != 0 {
		t.Fatalf("MatchAndScore(empty, anything) = (%v, %v, %v), want (1.0/0, nil, true)", score, ranges, ok)
	}
}

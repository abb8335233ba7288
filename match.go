package fuzzyrank

import "github.com/fuzzyrank/fuzzyrank/algo"

// CandidateBatchesMatch is one candidate's raw text score, located by
// (batch, candidate) index rather than by copying its bytes out.
type CandidateBatchesMatch struct {
	BatchIndex     int
	CandidateIndex int
	TextScore      float64
}

// CompletionScore composites a candidate's text relevance against an
// externally supplied semantic relevance. Value is the product of the two:
// the natural choice when neither component alone should be able to force
// a candidate to the top, and the one this package documents as its pick
// among the combinations the scoring model leaves open.
type CompletionScore struct {
	TextComponent     float64
	SemanticComponent float64
	FalseStarts       uint32
}

// Value returns the composite score used for sorting and cutoffs.
func (s CompletionScore) Value() float64 {
	return s.TextComponent * s.SemanticComponent
}

// Match is one caller-supplied candidate, pre-scored via CompletionScore
// and optionally bucketed into a group (e.g. a type alongside its
// initializers) that should sort as a unit.
type Match struct {
	Identifier     string
	BatchIndex     int
	CandidateIndex int
	GroupID        *uint64
	Score          CompletionScore
}

// RescoredMatch is the collator's working copy of a Match: it tracks a
// dense group id (array-indexable, unlike the caller's sparse GroupID) and
// the group's best score alongside the match's own.
type RescoredMatch struct {
	OriginalMatchIndex int
	TextIndex          int
	DenseGroupID       int // -1 when ungrouped
	IndividualScore    CompletionScore
	GroupScore         float64
	FalseStarts        uint32
}

// Selection is the final, stably ordered result of MatchCollator.
type Selection struct {
	Precision algo.Precision
	Matches   []Match
}

// TieBreaker decides, for two matches the primary sort finds equal, which
// should sort first. It is consulted only while the surviving result set
// is small enough to afford it (see SelectBestMatches's
// maxItemsForExpensiveSelection).
type TieBreaker func(a, b Match) bool

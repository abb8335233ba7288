package fuzzyrank

import (
	"runtime"
	"sync"

	"github.com/fuzzyrank/fuzzyrank/algo"
	"github.com/fuzzyrank/fuzzyrank/internal/util"
)

// slabSize32/slabSizeInt bound the per-worker scratch arena each
// ScoredMatchSelector worker reuses across every candidate it scores. A
// candidate longer than this falls back to a fresh allocation for that one
// call (util.Alloc32/AllocInt's nil/undersized fallback), so this is a
// performance tuning, never a correctness bound.
const (
	slabSize32  = 4096
	slabSizeInt = 4096
)

// candidateSlice is one worker's contiguous share of one batch.
type candidateSlice struct {
	batchIndex int
	lo, hi     int // candidate index range [lo, hi) within the batch
}

// ScoredMatchSelector is a stateful parallel driver over a fixed set of
// batches: the partitioning of candidates across workers is computed once,
// at construction, and every scoredMatches call reuses it — the same
// pre-partition-then-reuse discipline as fzf's Matcher.sliceChunks, just
// computed up front instead of per call since this engine's batches don't
// get appended to mid-search.
type ScoredMatchSelector struct {
	batches     []*CandidateBatch
	partitions  int
	workSlices  [][]candidateSlice // one []candidateSlice per worker
	workerSlabs []*util.Slab       // one reused scratch arena per worker

	cancel *util.AtomicBool

	mu sync.Mutex
}

// NewScoredMatchSelector partitions batches contiguously across
// runtime.GOMAXPROCS(0) workers, favoring locality: a worker owns a
// contiguous run of candidates (AAA BBB CCC), never an interleaving
// (ABC ABC ABC), so each worker's output buffer maps straight back onto
// one or two source batches.
func NewScoredMatchSelector(batches []*CandidateBatch) *ScoredMatchSelector {
	partitions := runtime.GOMAXPROCS(0)
	if partitions < 1 {
		partitions = 1
	}

	total := 0
	for _, b := range batches {
		total += b.Len()
	}

	s := &ScoredMatchSelector{batches: batches, partitions: partitions, cancel: util.NewAtomicBool(false)}
	s.workerSlabs = make([]*util.Slab, partitions)
	for w := range s.workerSlabs {
		s.workerSlabs[w] = util.MakeSlab(slabSize32, slabSizeInt)
	}
	if total == 0 {
		s.workSlices = make([][]candidateSlice, partitions)
		return s
	}

	perWorker := total / partitions
	if perWorker == 0 {
		perWorker = 1
	}

	s.workSlices = make([][]candidateSlice, 0, partitions)
	globalIdx := 0
	batchIdx, withinBatch := 0, 0

	for w := 0; w < partitions && globalIdx < total; w++ {
		remaining := perWorker
		if w == partitions-1 {
			remaining = total - globalIdx
		}
		var slices []candidateSlice
		for remaining > 0 && batchIdx < len(batches) {
			available := batches[batchIdx].Len() - withinBatch
			take := available
			if take > remaining {
				take = remaining
			}
			if take > 0 {
				slices = append(slices, candidateSlice{batchIndex: batchIdx, lo: withinBatch, hi: withinBatch + take})
				withinBatch += take
				remaining -= take
				globalIdx += take
			}
			if withinBatch == batches[batchIdx].Len() {
				batchIdx++
				withinBatch = 0
			}
		}
		s.workSlices = append(s.workSlices, slices)
	}
	for len(s.workSlices) < partitions {
		s.workSlices = append(s.workSlices, nil)
	}

	return s
}

// ScoredMatches dispatches all workers in parallel, each scoring its
// pre-assigned contiguous candidates against pattern at the given
// precision, then concatenates their results in batch/candidate index
// order. The call is single-entrant: concurrent callers block on the
// selector's mutex rather than racing its workers' scratch.
//
// Every worker checks s.cancel between candidates, the same cooperative
// cancellation fzf's Matcher.scan gives its own goroutine fan-out: a caller
// that calls Cancel while a ScoredMatches is in flight gets a prompt,
// partial return instead of waiting out the whole batch.
func (s *ScoredMatchSelector) ScoredMatches(pattern *Pattern, precision algo.Precision) []CandidateBatchesMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel.Set(false)

	partialResults := make([][]CandidateBatchesMatch, len(s.workSlices))
	var wg sync.WaitGroup
	for w, slices := range s.workSlices {
		wg.Add(1)
		go func(w int, slices []candidateSlice) {
			defer wg.Done()
			slab := s.workerSlabs[w]
			var out []CandidateBatchesMatch
			for _, sl := range slices {
				batch := s.batches[sl.batchIndex]
				for ci := sl.lo; ci < sl.hi; ci++ {
					if s.cancel.Get() {
						partialResults[w] = out
						return
					}
					candidate := batch.CandidateAt(ci)
					score, _, ok := algo.MatchAndScore(pattern.inner, candidate.Bytes, candidate.ContentType.Params(), precision, slab)
					if !ok {
						continue
					}
					out = append(out, CandidateBatchesMatch{BatchIndex: sl.batchIndex, CandidateIndex: ci, TextScore: score.Value})
				}
			}
			partialResults[w] = out
		}(w, slices)
	}
	wg.Wait()

	total := 0
	for _, r := range partialResults {
		total += len(r)
	}
	matches := make([]CandidateBatchesMatch, 0, total)
	for _, r := range partialResults {
		matches = append(matches, r...)
	}
	return matches
}

// Cancel asks an in-flight ScoredMatches call to stop early. Workers notice
// between candidates and return whatever they'd already scored; it has no
// effect when no call is in flight, and a later ScoredMatches call clears
// the flag before starting its own workers.
func (s *ScoredMatchSelector) Cancel() {
	s.cancel.Set(true)
}

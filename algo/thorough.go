package algo

// Step is one frame of the explicit backtracking stack the thorough search
// walks instead of recursing, the same discipline fzf's algo package uses
// for its Smith-Waterman-style traversal (src/algo/algo.go's loop over a
// flat H matrix rather than a recursive aligner). A step names a candidate
// location to try matching pattern[patternOffset] against; ranges is the
// set of matched byte ranges already committed on the path that produced
// this step.
type Step struct {
	patternOffset   int
	candidateOffset int
	ranges          []ByteRange
}

// thoroughSearch explores alternative partitionings of the pattern across
// the candidate, budgeted to ThoroughSearchBudget step-stack pops.
//
// Every popped step says "try to match pattern[patternOffset] starting at
// candidateOffset". Two moves follow a byte match: commit it (extend or
// open a range, advance both indices by one) or decline it and retry the
// same pattern byte starting at the next plausible restart point,
// jumpTo[candidateOffset] — the closest later token start whose byte the
// pattern's rejection filter doesn't already rule out. Restricting restarts
// to that jump table (rather than scanning every later byte equal to the
// next pattern character) is what keeps the search polynomial on
// adversarial candidates like a long run of one repeated letter: the
// number of token starts in a candidate is bounded independent of how many
// individual bytes happen to match.
//
// Before either move, a step is dropped when the candidate doesn't have
// enough bytes left to finish the pattern, or when the successive
// rejection filters prove the remaining pattern bytes can't occur in the
// remaining candidate bytes — the spec's two guards against wasting budget
// on partitions that cannot possibly complete.
//
// It returns the best-scoring partitioning found within budget, or ok=false
// if none completes the pattern at all (which fastMatch would also fail).
func thoroughSearch(pattern *Pattern, ic *IndexedCandidate, params ContentTypeParams) ([]ByteRange, MatchStyle, bool) {
	p := pattern.Lowercase()
	c := ic.Lower
	n := len(c)
	if len(p) == 0 {
		return nil, StyleNone, false
	}

	jumpTo := nextSearchStarts(pattern, ic)
	candidateSuccessive := candidateSuccessiveRejectionFilters(ic)

	var best []ByteRange
	bestScore := WorstPossibleScore()
	found := false

	stack := make([]Step, 0, 64)
	stack = append(stack, Step{patternOffset: 0, candidateOffset: 0})

	budget := ThoroughSearchBudget
	for len(stack) > 0 && budget > 0 {
		budget--
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pi, ci := top.patternOffset, top.candidateOffset
		if pi == len(p) {
			score := singleScore(pattern, ic, top.ranges, params, Thorough, StyleLowercaseGreedy)
			if !found || score.Better(bestScore) {
				bestScore, best, found = score, top.ranges, true
			}
			continue
		}
		if ci >= n {
			continue
		}

		remainingP := len(p) - pi
		remainingC := n - ci
		if remainingC < remainingP {
			continue
		}
		if Match(pattern.SuccessiveFilter(pi), candidateSuccessive[ci]) == No {
			continue
		}

		restart := jumpTo[ci]

		if c[ci] != p[pi] {
			if restart < n {
				stack = append(stack, Step{patternOffset: pi, candidateOffset: restart, ranges: top.ranges})
			}
			continue
		}

		var extended []ByteRange
		if len(top.ranges) > 0 && top.ranges[len(top.ranges)-1].Hi == ci {
			extended = cloneRanges(top.ranges)
			extended[len(extended)-1].Hi = ci + 1
		} else {
			extended = append(cloneRanges(top.ranges), ByteRange{ci, ci + 1})
		}

		// Alternative: decline this byte for pattern[pi], keep looking for
		// it starting at the next restart point (a potential false start).
		if restart < n {
			stack = append(stack, Step{patternOffset: pi, candidateOffset: restart, ranges: top.ranges})
		}
		// Primary: commit the byte, advance both indices by one.
		stack = append(stack, Step{patternOffset: pi + 1, candidateOffset: ci + 1, ranges: extended})
	}

	if !found {
		return nil, StyleNone, false
	}
	return best, StyleLowercaseGreedy, true
}

func cloneRanges(r []ByteRange) []ByteRange {
	out := make([]ByteRange, len(r))
	copy(out, r)
	return out
}

// nextSearchStarts builds, for every candidate byte i, the smallest token
// start j >= i+1 whose byte the pattern's rejection filter doesn't already
// rule out, or len(candidate) if none remains. Built right-to-left in one
// pass out of ic's slab, the same offset-threaded-scratch discipline
// fzf's FuzzyMatchV2 uses for its own per-call arrays.
func nextSearchStarts(pattern *Pattern, ic *IndexedCandidate) []int {
	n := len(ic.Lower)
	starts := ic.allocInt(n)

	filter := pattern.Filter()
	next := n
	for i := n - 1; i >= 0; i-- {
		starts[i] = next
		isTokenStart := i < len(ic.Tok.ByteAddr) && ic.Tok.ByteAddr[i].IndexInToken == 0
		if isTokenStart && filter.Contains(ic.Lower[i]) == Maybe {
			next = i
		}
	}
	return starts
}

// candidateSuccessiveRejectionFilters returns, for every candidate byte i,
// the union of bitFor(candidate.lower[i:]) — the candidate-side analogue
// of Pattern.SuccessiveFilter, letting the thorough search prune a branch
// the moment the bytes remaining in the candidate provably can't contain
// the pattern bytes remaining to match. Built right-to-left out of ic's
// slab, one int32 mask per byte.
func candidateSuccessiveRejectionFilters(ic *IndexedCandidate) []RejectionFilter {
	n := len(ic.Lower)
	masks := ic.allocI32(n)

	var running RejectionFilter
	for i := n - 1; i >= 0; i-- {
		running.UnionByte(ic.Lower[i])
		masks[i] = int32(running.Mask())
	}

	out := make([]RejectionFilter, n)
	for i, m := range masks {
		out[i] = RejectionFilter{mask: uint32(m)}
	}
	return out
}

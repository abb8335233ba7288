package fuzzyrank

import "github.com/fuzzyrank/fuzzyrank/algo"

// Candidate is a zero-copy view into one entry of a CandidateBatch. It must
// never outlive the batch it was read from.
type Candidate struct {
	Bytes       []byte
	ContentType ContentType
	Filter      algo.RejectionFilter
}

// CandidateBatch is a column-oriented, append-only store for N candidate
// identifiers: one concatenated byte buffer, a monotone offset table, and
// parallel per-candidate filter/content-type slices. Modeled on fzf's Chunk
// (src/chunklist.go), generalized from a fixed-size ring of lines to an
// arbitrary-length, explicitly content-typed batch.
type CandidateBatch struct {
	bytes        []byte
	byteOffsets  []int32
	filters      []algo.RejectionFilter
	contentTypes []ContentType
}

// NewCandidateBatch preallocates byteCapacity bytes of backing storage; the
// batch still grows past that if Append exceeds it.
func NewCandidateBatch(byteCapacity int) *CandidateBatch {
	return &CandidateBatch{
		bytes:       make([]byte, 0, byteCapacity),
		byteOffsets: []int32{0},
	}
}

// Append adds one candidate's bytes and content type to the batch, computing
// its rejection filter once so later matching never re-scans the bytes to
// rebuild it.
func (b *CandidateBatch) Append(candidateBytes []byte, contentType ContentType) {
	b.bytes = append(b.bytes, candidateBytes...)
	b.byteOffsets = append(b.byteOffsets, int32(len(b.bytes)))
	b.filters = append(b.filters, algo.FromBytes(candidateBytes))
	b.contentTypes = append(b.contentTypes, contentType)
}

// Len returns the number of candidates in the batch.
func (b *CandidateBatch) Len() int {
	return len(b.contentTypes)
}

// BytesAt returns the raw bytes of candidate i without copying.
func (b *CandidateBatch) BytesAt(i int) []byte {
	return b.bytes[b.byteOffsets[i]:b.byteOffsets[i+1]]
}

// CandidateAt returns a zero-copy Candidate view of entry i.
func (b *CandidateBatch) CandidateAt(i int) Candidate {
	return Candidate{
		Bytes:       b.BytesAt(i),
		ContentType: b.contentTypes[i],
		Filter:      b.filters[i],
	}
}

// Enumerate calls f for every candidate index in [lo, hi).
func (b *CandidateBatch) Enumerate(lo, hi int, f func(index int, c Candidate)) {
	for i := lo; i < hi; i++ {
		f(i, b.CandidateAt(i))
	}
}

// Equal reports whether b and o hold the same candidates in the same order.
func (b *CandidateBatch) Equal(o *CandidateBatch) bool {
	if b.Len() != o.Len() {
		return false
	}
	for i := 0; i < b.Len(); i++ {
		a, c := b.CandidateAt(i), o.CandidateAt(i)
		if a.ContentType != c.ContentType || a.Filter != c.Filter || string(a.Bytes) != string(c.Bytes) {
			return false
		}
	}
	return true
}

// BatchStats summarizes a batch for logging and diagnostics, the same shape
// fzf's CountItems reduces a Chunk list to.
type BatchStats struct {
	CandidateCount int
	TotalBytes     int
}

// Stats returns the batch's size summary.
func (b *CandidateBatch) Stats() BatchStats {
	return BatchStats{CandidateCount: b.Len(), TotalBytes: len(b.bytes)}
}

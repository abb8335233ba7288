package util

// Slab is a reusable scratch arena handed to a single scoring call so its
// hot loops (indexed-candidate construction and the thorough backtracking
// search in package algo) don't allocate. It is the Go stand-in for the
// spec's per-call bump allocator: callers slice off what they need with
// Alloc32/AllocInt and let it go out of scope; the backing arrays are
// reclaimed by reuse, not by freeing. A ScoredMatchSelector owns one Slab
// per worker, allocated once and reused across every ScoredMatches call so
// its hot path never re-allocates these arrays.
//
// Modeled directly on fzf's util.Slab (src/util/slab.go), extended with an
// int scratch region for the next-search-start jump table and per-token
// offset bookkeeping the thorough search needs that fzf's two-algorithm
// matcher never did.
type Slab struct {
	I32 []int32
	Int []int
}

// MakeSlab allocates a Slab sized for candidates up to roughly size32 bytes
// long and sizeInt scratch ints (token offsets + the next-search-start jump
// table).
func MakeSlab(size32, sizeInt int) *Slab {
	return &Slab{
		I32: make([]int32, size32),
		Int: make([]int, sizeInt),
	}
}

// Alloc32 carves out a size-length window of s.I32 starting at offset, or
// falls back to a fresh slice if the slab is nil or too small.
func Alloc32(offset int, s *Slab, size int) (int, []int32) {
	if s != nil && cap(s.I32) >= offset+size {
		return offset + size, s.I32[offset : offset+size]
	}
	return offset, make([]int32, size)
}

// AllocInt carves out a size-length window of s.Int starting at offset.
func AllocInt(offset int, s *Slab, size int) (int, []int) {
	if s != nil && cap(s.Int) >= offset+size {
		return offset + size, s.Int[offset : offset+size]
	}
	return offset, make([]int, size)
}

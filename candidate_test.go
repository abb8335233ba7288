package fuzzyrank

import "testing"

func TestCandidateBatchAppendAndRoundTrip(t *testing.T) {
	b := NewCandidateBatch(64)
	b.Append([]byte("loadData()"), CodeCompletionSymbol)
	b.Append([]byte("loadFile()"), CodeCompletionSymbol)

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	if string(b.BytesAt(0)) != "loadData()" || string(b.BytesAt(1)) != "loadFile()" {
		t.Fatalf("BytesAt round-trip mismatch: %q, %q", b.BytesAt(0), b.BytesAt(1))
	}
}

func TestCandidateBatchStats(t *testing.T) {
	b := NewCandidateBatch(0)
	b.Append([]byte("abc"), FileName)
	b.Append([]byte("de"), FileName)
	stats := b.Stats()
	if stats.CandidateCount != 2 || stats.TotalBytes != 5 {
		t.Fatalf("Stats() = %+v, want {2 5}", stats)
	}
}

func TestCandidateBatchEqual(t *testing.T) {
	a := NewCandidateBatch(0)
	a.Append([]byte("foo"), ProjectSymbol)
	b := NewCandidateBatch(0)
	b.Append([]byte("foo"), ProjectSymbol)
	if !a.Equal(b) {
		t.Fatalf("identical batches reported unequal")
	}
	b.Append([]byte("bar"), ProjectSymbol)
	if a.Equal(b) {
		t.Fatalf("batches of different length reported equal")
	}
}

func TestCandidateBatchEnumerate(t *testing.T) {
	b := NewCandidateBatch(0)
	b.Append([]byte("a"), Unknown)
	b.Append([]byte("bb"), Unknown)
	b.Append([]byte("ccc"), Unknown)

	var seen []string
	b.Enumerate(1, 3, func(i int, c Candidate) {
		seen = append(seen, string(c.Bytes))
	})
	if len(seen) != 2 || seen[0] != "bb" || seen[1] != "ccc" {
		t.Fatalf("Enumerate(1,3) = %v, want [bb ccc]", seen)
	}
}

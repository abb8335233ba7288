package fuzzyrank

import "testing"

func TestContentTypeParamsTableMatchesSpec(t *testing.T) {
	p := CodeCompletionSymbol.Params()
	if p.PrefixMatchBonus != 2.00 || p.FullMatchBonus != 1.00 || !p.EligibleForTypeOverLocal {
		t.Fatalf("codeCompletionSymbol params = %+v, mismatched expected values", p)
	}
	fn := FileName.Params()
	if fn.BaseNameSeparator != '.' || !fn.ContentAfterBaseIsTrivial {
		t.Fatalf("fileName params = %+v, want baseNameSeparator '.' and contentAfterBaseTrivial true", fn)
	}
}

func TestBestRejectedTextScoreClampsToLastEntry(t *testing.T) {
	last := bestRejectedTextScore(10)
	clamped := bestRejectedTextScore(1000)
	if last != clamped {
		t.Fatalf("bestRejectedTextScore(1000) = %v, want clamp to entry for length 10 (%v)", clamped, last)
	}
}

func TestBestRejectedTextScoreZeroForShortPatterns(t *testing.T) {
	if bestRejectedTextScore(0) != 0.0 || bestRejectedTextScore(1) != 0.0 {
		t.Fatalf("bestRejectedTextScore(0 or 1) should be 0.0")
	}
}

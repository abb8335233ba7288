package fuzzyrank

// Tunables from the external interface, collected here the way fzf keeps
// its magic numbers in constants.go rather than scattered across callers.
const (
	maxInfluenceBonus                                     = 0.10
	maxFalseStarts                                         = 2
	minimumPatternLengthToAlwaysRescoreWithThoroughPrecision = 2
	defaultMaximumNumberOfItemsForExpensiveSelection       = 100
)

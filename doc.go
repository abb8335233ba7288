// Package fuzzyrank implements a fuzzy code-completion matching and
// ranking engine: given a user-typed pattern and a corpus of candidate
// identifiers, it filters non-matches, scores survivors with a two-stage
// fast/thorough strategy, optionally boosts scores using contextual
// influencing identifiers, and returns a stably ordered selection.
//
// The matching and scoring core lives in the algo subpackage and knows
// nothing about ContentType; this package resolves a ContentType to the
// parameter table algo needs and layers batching, parallel scoring, and
// final collation on top.
package fuzzyrank

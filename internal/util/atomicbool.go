package util

import "sync/atomic"

// AtomicBool provides synchronized access to a boolean across the workers
// of a ScoredMatchSelector, the same role fzf's util.AtomicBool plays in
// Matcher.scan's cancellation flag. Built on atomic.Bool instead of a
// mutex since that type didn't exist when fzf's version was written; the
// Get/Set call pattern carries over unchanged.
type AtomicBool struct {
	v atomic.Bool
}

// NewAtomicBool returns a new AtomicBool with the given initial state.
func NewAtomicBool(initialState bool) *AtomicBool {
	a := &AtomicBool{}
	a.v.Store(initialState)
	return a
}

// Get returns the current value.
func (a *AtomicBool) Get() bool {
	return a.v.Load()
}

// Set updates the value and returns it.
func (a *AtomicBool) Set(newState bool) bool {
	a.v.Store(newState)
	return newState
}

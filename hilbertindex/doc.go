// SPDX-License-Identifier: MIT

// Package hilbertindex numbers every configuration of a discrete Hilbert
// space, giving exact-enumeration consumers a bijection
//
//	k ∈ [0, LocalSize^Size)  ↔  configuration
//
// Digits use a uniform base LocalSize, one digit per site, with site 0 the
// least significant: digit_i = (k / LocalSize^i) mod LocalSize, and the site
// value is LocalStates()[digit_i]. Global constraints are ignored here; the
// constrained subset is obtained with Filter.
//
// The index size grows exponentially, so New refuses spaces with
// Size·ln(LocalSize) ≥ ln(MaxStates) instead of overflowing. Call Enumerable
// first to branch without an error.
//
// An Index is immutable and safe for concurrent use. Filter fans out over
// shards of the index range on an errgroup and returns a roaring bitmap of
// the accepted indices.
//
// Errors:
//
//   - ErrNilSpace:        New called with a nil space.
//   - ErrNotDiscrete:     the space has no finite local basis.
//   - ErrTooLarge:        the space exceeds the enumeration bound.
//   - ErrDuplicateState:  local states are not unique.
//   - ErrIndexOutOfRange: k outside [0, NStates()).
//   - ErrStateLength:     configuration length differs from Size().
//   - ErrUnknownValue:    a site value is not a local state.
//   - ErrNilPredicate:    Filter called without a predicate.
package hilbertindex

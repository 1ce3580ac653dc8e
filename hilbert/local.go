// SPDX-License-Identifier: MIT
// Package: manybody/hilbert
//
// local.go — LocalSpace, the ordered quantum numbers of a single site.
//
// Contract:
//   • non-empty, finite, strictly increasing; fixed at construction.
//   • IndexOf is an exact lookup, never nearest-match.

package hilbert

import (
	"fmt"
	"math"
	"sort"
)

const (
	methodLocalSpace = "NewLocalSpace"
	methodSpinLocal  = "SpinLocalSpace"
	methodBosonLocal = "BosonLocalSpace"
)

// LocalSpace is the ordered, finite set of values one site may take.
// The zero value is empty and only useful as a placeholder.
type LocalSpace struct {
	states []float64
}

// NewLocalSpace copies values into a LocalSpace.
// Returns ErrInvalidInput if values is empty, holds NaN/±Inf, or is not
// strictly increasing.
func NewLocalSpace(values ...float64) (LocalSpace, error) {
	if len(values) == 0 {
		return LocalSpace{}, fmt.Errorf("%s: no local states: %w", methodLocalSpace, ErrInvalidInput)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return LocalSpace{}, fmt.Errorf("%s: state[%d]=%v is not finite: %w", methodLocalSpace, i, v, ErrInvalidInput)
		}
		if i > 0 && v <= values[i-1] {
			return LocalSpace{}, fmt.Errorf("%s: states must be strictly increasing, state[%d]=%v after %v: %w",
				methodLocalSpace, i, v, values[i-1], ErrInvalidInput)
		}
	}

	return LocalSpace{states: append([]float64(nil), values...)}, nil
}

// SpinLocalSpace returns the values 2·Sz for a spin of magnitude s:
// -2s, -2s+2, …, 2s. For s=3/2 that is {-3,-1,1,3}; for s=1 it is {-2,0,2}.
// Returns ErrInvalidInput unless s > 0 and 2s is integral.
func SpinLocalSpace(s float64) (LocalSpace, error) {
	if !(s > 0) || math.IsInf(s, 0) {
		return LocalSpace{}, fmt.Errorf("%s: S=%v: invalid spin value: %w", methodSpinLocal, s, ErrInvalidInput)
	}
	if math.Floor(2*s) != 2*s {
		return LocalSpace{}, fmt.Errorf("%s: S=%v: spin value is neither integer nor half integer: %w",
			methodSpinLocal, s, ErrInvalidInput)
	}

	twoS := int(2 * s)
	states := make([]float64, twoS+1)
	for i := range states {
		states[i] = float64(-twoS + 2*i)
	}

	return LocalSpace{states: states}, nil
}

// BosonLocalSpace returns the occupations 0..nmax.
// Returns ErrInvalidInput if nmax ≤ 0.
func BosonLocalSpace(nmax int) (LocalSpace, error) {
	if nmax <= 0 {
		return LocalSpace{}, fmt.Errorf("%s: Nmax=%d: invalid maximum occupation number: %w",
			methodBosonLocal, nmax, ErrInvalidInput)
	}

	states := make([]float64, nmax+1)
	for i := range states {
		states[i] = float64(i)
	}

	return LocalSpace{states: states}, nil
}

// Size returns the number of local states.
func (l LocalSpace) Size() int { return len(l.states) }

// States returns a copy of the local states in increasing order.
func (l LocalSpace) States() []float64 { return append([]float64(nil), l.states...) }

// At returns the i-th local state. It panics if i is out of range, like a
// slice index.
func (l LocalSpace) At(i int) float64 { return l.states[i] }

// Min returns the smallest local state.
func (l LocalSpace) Min() float64 { return l.states[0] }

// Max returns the largest local state.
func (l LocalSpace) Max() float64 { return l.states[len(l.states)-1] }

// IndexOf returns the position of v, requiring exact equality.
func (l LocalSpace) IndexOf(v float64) (int, bool) {
	i := sort.SearchFloat64s(l.states, v)
	if i < len(l.states) && l.states[i] == v {
		return i, true
	}

	return 0, false
}

// Contains reports whether v is one of the local states.
func (l LocalSpace) Contains(v float64) bool {
	_, ok := l.IndexOf(v)
	return ok
}

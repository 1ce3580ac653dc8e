// SPDX-License-Identifier: MIT

package hilbertindex

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/manybody/hilbert"
)

// MaxStates is the default enumeration bound.
const MaxStates = math.MaxInt32

const (
	methodNew           = "New"
	methodNumberToState = "NumberToState"
	methodStateToNumber = "StateToNumber"
)

// Enumerable reports whether localSize^size stays strictly below maxStates,
// testing size·ln(localSize) < ln(maxStates) so nothing overflows.
func Enumerable(localSize, size, maxStates int) bool {
	if localSize < 1 || size < 1 || maxStates < 1 {
		return false
	}

	return float64(size)*math.Log(float64(localSize)) < math.Log(float64(maxStates))
}

// Index is the bijection between [0, NStates()) and configurations of a
// discrete space. Immutable after New.
type Index struct {
	size      int
	localSize int
	nstates   int
	local     []float64
	digit     map[float64]int
	weights   []int // weights[i] = localSize^i
}

// New builds the index of space. The space's global constraint, if any, is
// ignored.
func New(space hilbert.Space, opts ...Option) (*Index, error) {
	cfg := newConfig(opts...)
	if space == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilSpace)
	}
	if !space.IsDiscrete() {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNotDiscrete)
	}

	size, local := space.Size(), space.LocalStates()
	localSize := len(local)
	if !Enumerable(localSize, size, cfg.maxStates) {
		return nil, fmt.Errorf("%s: %d^%d states exceed bound %d: %w",
			methodNew, localSize, size, cfg.maxStates, ErrTooLarge)
	}

	ix := &Index{
		size:      size,
		localSize: localSize,
		local:     local,
		digit:     make(map[float64]int, localSize),
		weights:   make([]int, size),
	}
	for d, v := range local {
		if _, dup := ix.digit[v]; dup {
			return nil, fmt.Errorf("%s: value %g: %w", methodNew, v, ErrDuplicateState)
		}
		ix.digit[v] = d
	}

	w := 1
	for i := range ix.weights {
		ix.weights[i] = w
		w *= localSize
	}
	ix.nstates = w

	cfg.logger.Debug("configuration index built",
		"size", size, "localSize", localSize, "nstates", ix.nstates)

	return ix, nil
}

// NStates returns LocalSize^Size.
func (ix *Index) NStates() int { return ix.nstates }

// Size returns the number of sites.
func (ix *Index) Size() int { return ix.size }

// LocalSize returns the digit base.
func (ix *Index) LocalSize() int { return ix.localSize }

// LocalStates returns a copy of the digit alphabet in ascending order.
func (ix *Index) LocalStates() []float64 {
	out := make([]float64, len(ix.local))
	copy(out, ix.local)

	return out
}

// NumberToState returns the configuration numbered k.
func (ix *Index) NumberToState(k int) ([]float64, error) {
	state := make([]float64, ix.size)
	if err := ix.NumberToStateInto(k, state); err != nil {
		return nil, err
	}

	return state, nil
}

// NumberToStateInto writes the configuration numbered k into dst.
func (ix *Index) NumberToStateInto(k int, dst []float64) error {
	if k < 0 || k >= ix.nstates {
		return fmt.Errorf("%s: k=%d not in [0, %d): %w",
			methodNumberToState, k, ix.nstates, ErrIndexOutOfRange)
	}
	if len(dst) != ix.size {
		return fmt.Errorf("%s: got %d sites, want %d: %w",
			methodNumberToState, len(dst), ix.size, ErrStateLength)
	}
	ix.decode(k, dst)

	return nil
}

// StateToNumber returns the number of state. Values must match local
// states exactly.
func (ix *Index) StateToNumber(state []float64) (int, error) {
	if len(state) != ix.size {
		return 0, fmt.Errorf("%s: got %d sites, want %d: %w",
			methodStateToNumber, len(state), ix.size, ErrStateLength)
	}

	k := 0
	for i, v := range state {
		d, ok := ix.digit[v]
		if !ok {
			return 0, fmt.Errorf("%s: site %d value %g: %w",
				methodStateToNumber, i, v, ErrUnknownValue)
		}
		k += d * ix.weights[i]
	}

	return k, nil
}

// All yields every (k, configuration) pair in increasing k. The slice is
// reused between iterations; copy it to retain it.
func (ix *Index) All() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		buf := make([]float64, ix.size)
		for k := 0; k < ix.nstates; k++ {
			ix.decode(k, buf)
			if !yield(k, buf) {
				return
			}
		}
	}
}

// decode assumes 0 ≤ k < nstates and len(dst) == size.
func (ix *Index) decode(k int, dst []float64) {
	for i := range dst {
		dst[i] = ix.local[k%ix.localSize]
		k /= ix.localSize
	}
}

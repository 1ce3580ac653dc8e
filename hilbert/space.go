// SPDX-License-Identifier: MIT

package hilbert

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/manybody/lattice"
)

// RandSource is the caller-owned pseudo-random engine threaded through
// RandomVals. *math/rand.Rand satisfies it. Not safe for concurrent use.
type RandSource interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Shuffle permutes n elements uniformly (Fisher–Yates).
	Shuffle(n int, swap func(i, j int))
}

// Space is the capability set shared by every Hilbert space variant.
type Space interface {
	// IsDiscrete reports whether the local states form a finite list.
	IsDiscrete() bool
	// Size returns the number of sites.
	Size() int
	// LocalSize returns the number of local states per site.
	LocalSize() int
	// LocalStates returns a copy of the local states in increasing order.
	LocalStates() []float64
	// RandomVals fills state with a random configuration honoring any
	// global constraint.
	RandomVals(state []float64, rng RandSource) error
	// UpdateConf sets state[sites[i]] = values[i] in list order.
	UpdateConf(state []float64, sites []int, values []float64) error
	// Graph returns the borrowed lattice.
	Graph() lattice.Graph
}

// Kind names a Space variant.
type Kind string

// Known variants.
const (
	KindSpin   Kind = "Spin"
	KindBoson  Kind = "Boson"
	KindQubit  Kind = "Qubit"
	KindCustom Kind = "Custom"
)

// base carries what every discrete variant shares: the borrowed lattice,
// its site count, the local space and the logger.
type base struct {
	graph  lattice.Graph
	size   int
	local  LocalSpace
	logger *slog.Logger
}

func newBase(method string, g lattice.Graph, local LocalSpace, cfg config) (base, error) {
	if g == nil {
		return base{}, fmt.Errorf("%s: nil lattice: %w", method, ErrInvalidInput)
	}
	n := g.Nsites()
	if n <= 0 {
		return base{}, fmt.Errorf("%s: %d sites: invalid number of sites: %w", method, n, ErrInvalidInput)
	}

	return base{graph: g, size: n, local: local, logger: cfg.logger}, nil
}

// IsDiscrete always reports true.
func (b *base) IsDiscrete() bool { return true }

// Size returns the number of sites.
func (b *base) Size() int { return b.size }

// LocalSize returns the number of local states.
func (b *base) LocalSize() int { return b.local.Size() }

// LocalStates returns a copy of the local states.
func (b *base) LocalStates() []float64 { return b.local.States() }

// Local returns the LocalSpace replicated on every site.
func (b *base) Local() LocalSpace { return b.local }

// Graph returns the borrowed lattice.
func (b *base) Graph() lattice.Graph { return b.graph }

// checkSample validates RandomVals arguments.
func (b *base) checkSample(state []float64, rng RandSource) error {
	if rng == nil {
		return fmt.Errorf("RandomVals: %w", ErrNilRand)
	}
	if len(state) != b.size {
		return fmt.Errorf("RandomVals: len(state)=%d, want %d: %w", len(state), b.size, ErrStateLength)
	}

	return nil
}

// fillUniform draws every site independently and uniformly from the local states.
func (b *base) fillUniform(state []float64, rng RandSource) {
	n := b.local.Size()
	for i := range state {
		state[i] = b.local.At(rng.Intn(n))
	}
}

// updateConf validates everything first, so a failed call leaves state intact.
func (b *base) updateConf(state []float64, sites []int, values []float64) error {
	if len(state) != b.size {
		return fmt.Errorf("UpdateConf: len(state)=%d, want %d: %w", len(state), b.size, ErrStateLength)
	}
	if len(sites) != len(values) {
		return fmt.Errorf("UpdateConf: %d sites, %d values: %w", len(sites), len(values), ErrUpdateMismatch)
	}
	for _, s := range sites {
		if s < 0 || s >= b.size {
			return fmt.Errorf("UpdateConf: site=%d of %d: %w", s, b.size, ErrSiteOutOfRange)
		}
	}

	for i, s := range sites {
		state[s] = values[i]
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: manybody/hilbert
//
// spin.go — Hilbert space of integer or half-integer spins.
//
// Local values are integers encoding 2·Sz: for S=3/2 they are -3,-1,1,3 and
// for S=1 they are -2,0,2. A fixed TotalSz therefore means every valid
// configuration sums to 2·TotalSz.
//
// Constraint feasibility (checked in SetConstraint, never at sampling time):
//   • 2·TotalSz is an integer;
//   • |2·TotalSz| ≤ 2S·N;
//   • 2S·N + 2·TotalSz is even.

package hilbert

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/manybody/lattice"
)

const (
	methodNewSpin       = "NewSpin"
	methodSpinConstrain = "Spin.SetConstraint"
)

// Spin is a space of N spins of magnitude S.
type Spin struct {
	base

	s    float64
	twoS int

	constrained bool
	totalSz     float64
	twoM        int // 2·totalSz, valid when constrained
}

var _ Space = (*Spin)(nil)

// NewSpin builds a spin space on g. cfg.TotalSz, when set, is applied via
// SetConstraint.
func NewSpin(g lattice.Graph, cfg SpinConfig, opts ...Option) (*Spin, error) {
	if err := validateConfig(methodNewSpin, cfg); err != nil {
		return nil, err
	}
	local, err := SpinLocalSpace(cfg.S)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSpin, err)
	}
	b, err := newBase(methodNewSpin, g, local, newConfig(opts...))
	if err != nil {
		return nil, err
	}

	sp := &Spin{base: b, s: cfg.S, twoS: local.Size() - 1}
	if cfg.TotalSz != nil {
		if err := sp.SetConstraint(*cfg.TotalSz); err != nil {
			return nil, err
		}
	}
	sp.logger.Debug("hilbert space created",
		"kind", KindSpin, "S", sp.s, "sites", sp.size, "local_size", local.Size(), "constrained", sp.constrained)

	return sp, nil
}

// S returns the spin magnitude.
func (sp *Spin) S() float64 { return sp.s }

// Constraint returns the fixed total magnetization, if any.
func (sp *Spin) Constraint() (float64, bool) { return sp.totalSz, sp.constrained }

// SetConstraint fixes the total magnetization to totalSz. On failure the
// previous constraint state is kept. Not safe to call concurrently with
// sampling.
func (sp *Spin) SetConstraint(totalSz float64) error {
	m := 2 * totalSz
	if math.IsNaN(m) || math.IsInf(m, 0) || math.Floor(m) != m {
		return fmt.Errorf("%s: TotalSz=%v: 2·TotalSz must be an integer: %w", methodSpinConstrain, totalSz, ErrInvalidInput)
	}
	limit := sp.twoS * sp.size
	if math.Abs(m) > float64(limit) {
		return fmt.Errorf("%s: TotalSz=%v: cannot fix the total magnetization, 2|M| cannot exceed %d: %w",
			methodSpinConstrain, totalSz, limit, ErrInvalidInput)
	}
	twoM := int(m)
	if (limit+twoM)%2 != 0 {
		return fmt.Errorf("%s: TotalSz=%v: cannot fix the total magnetization, 2S·Nspins + 2·TotalSz must be even: %w",
			methodSpinConstrain, totalSz, ErrInvalidInput)
	}

	sp.constrained = true
	sp.totalSz = totalSz
	sp.twoM = twoM
	sp.logger.Debug("constraint set", "kind", KindSpin, "total_sz", totalSz)

	return nil
}

// RandomVals fills state with a random spin configuration. With a constraint
// the configuration sums to exactly 2·TotalSz. See the package doc for the
// distribution of each case.
func (sp *Spin) RandomVals(state []float64, rng RandSource) error {
	if err := sp.checkSample(state, rng); err != nil {
		return err
	}

	switch {
	case !sp.constrained:
		sp.fillUniform(state, rng)
	case sp.twoS == 1:
		sp.fillHalf(state, rng)
	default:
		sp.fillQuanta(state, rng)
	}

	return nil
}

// fillHalf writes nup ups then ndown downs and shuffles them.
func (sp *Spin) fillHalf(state []float64, rng RandSource) {
	nup := (sp.size + sp.twoM) / 2
	for i := range state {
		if i < nup {
			state[i] = 1
		} else {
			state[i] = -1
		}
	}
	rng.Shuffle(len(state), func(i, j int) {
		state[i], state[j] = state[j], state[i]
	})
}

// fillQuanta starts every site at -2S and raises random non-saturated sites
// by 2 until the sum reaches 2·TotalSz. The pool is ordered, so picking the
// r-th member matches erasing from an ordered site list.
func (sp *Spin) fillQuanta(state []float64, rng RandSource) {
	lo, hi := sp.local.Min(), sp.local.Max()
	for i := range state {
		state[i] = lo
	}

	pool := roaring.New()
	pool.AddRange(0, uint64(sp.size))

	quanta := (sp.twoS*sp.size + sp.twoM) / 2
	for i := 0; i < quanta; i++ {
		r := rng.Intn(int(pool.GetCardinality()))
		site, _ := pool.Select(uint32(r)) // r < cardinality
		state[site] += 2
		if state[site] >= hi {
			pool.Remove(site)
		}
	}
}

// UpdateConf overwrites the listed sites. The constraint is not enforced;
// debug builds assert it still holds.
func (sp *Spin) UpdateConf(state []float64, sites []int, values []float64) error {
	if err := sp.updateConf(state, sites, values); err != nil {
		return err
	}
	if debugChecks && sp.constrained {
		invariant(total(state) == float64(sp.twoM), "spin configuration sums to %v, want %d", total(state), sp.twoM)
	}

	return nil
}

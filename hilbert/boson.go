// SPDX-License-Identifier: MIT
// Package: manybody/hilbert
//
// boson.go — bosons with occupation truncated at Nmax per site.

package hilbert

import (
	"fmt"

	"github.com/katalvlaran/manybody/lattice"
)

const (
	methodNewBoson       = "NewBoson"
	methodBosonConstrain = "Boson.SetConstraint"
)

// Boson is a space of N sites each holding 0..Nmax bosons.
type Boson struct {
	base

	nmax int

	constrained bool
	nbosons     int
}

var _ Space = (*Boson)(nil)

// NewBoson builds a boson space on g. cfg.Nbosons, when set, is applied via
// SetConstraint.
func NewBoson(g lattice.Graph, cfg BosonConfig, opts ...Option) (*Boson, error) {
	if err := validateConfig(methodNewBoson, cfg); err != nil {
		return nil, err
	}
	local, err := BosonLocalSpace(cfg.Nmax)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewBoson, err)
	}
	b, err := newBase(methodNewBoson, g, local, newConfig(opts...))
	if err != nil {
		return nil, err
	}

	bs := &Boson{base: b, nmax: cfg.Nmax}
	if cfg.Nbosons != nil {
		if err := bs.SetConstraint(*cfg.Nbosons); err != nil {
			return nil, err
		}
	}
	bs.logger.Debug("hilbert space created",
		"kind", KindBoson, "nmax", bs.nmax, "sites", bs.size, "constrained", bs.constrained)

	return bs, nil
}

// Nmax returns the maximum occupation per site.
func (bs *Boson) Nmax() int { return bs.nmax }

// Constraint returns the fixed particle number, if any.
func (bs *Boson) Constraint() (int, bool) { return bs.nbosons, bs.constrained }

// SetConstraint fixes the total number of bosons. It must lie in
// [0, Size()·Nmax]. On failure the previous constraint state is kept.
func (bs *Boson) SetConstraint(nbosons int) error {
	if nbosons < 0 {
		return fmt.Errorf("%s: Nbosons=%d: negative particle number: %w", methodBosonConstrain, nbosons, ErrInvalidInput)
	}
	if capacity := bs.size * bs.nmax; nbosons > capacity {
		return fmt.Errorf("%s: Nbosons=%d exceeds capacity %d: cannot set the desired number of bosons: %w",
			methodBosonConstrain, nbosons, capacity, ErrInvalidInput)
	}

	bs.constrained = true
	bs.nbosons = nbosons
	bs.logger.Debug("constraint set", "kind", KindBoson, "nbosons", nbosons)

	return nil
}

// RandomVals fills state with a random occupation configuration. With a
// constraint it holds exactly Nbosons particles, dropped one at a time on a
// uniformly drawn site, redrawing full sites.
func (bs *Boson) RandomVals(state []float64, rng RandSource) error {
	if err := bs.checkSample(state, rng); err != nil {
		return err
	}
	if !bs.constrained {
		bs.fillUniform(state, rng)
		return nil
	}

	for i := range state {
		state[i] = 0
	}
	full := float64(bs.nmax)
	for i := 0; i < bs.nbosons; i++ {
		site := rng.Intn(bs.size)
		for state[site] >= full {
			site = rng.Intn(bs.size)
		}
		state[site]++
	}

	return nil
}

// UpdateConf overwrites the listed sites. Debug builds assert every new
// occupation is ≤ Nmax and the particle number is unchanged.
func (bs *Boson) UpdateConf(state []float64, sites []int, values []float64) error {
	if err := bs.updateConf(state, sites, values); err != nil {
		return err
	}
	if debugChecks {
		for _, s := range sites {
			invariant(state[s] <= float64(bs.nmax), "occupation %v at site %d exceeds Nmax=%d", state[s], s, bs.nmax)
		}
		if bs.constrained {
			invariant(total(state) == float64(bs.nbosons), "boson configuration holds %v particles, want %d",
				total(state), bs.nbosons)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package hilbert

import "github.com/katalvlaran/manybody/lattice"

const methodNewQubit = "NewQubit"

// Qubit is a space of N two-level systems with local values {0, 1}.
type Qubit struct {
	base
}

var _ Space = (*Qubit)(nil)

// NewQubit builds a qubit space on g.
func NewQubit(g lattice.Graph, opts ...Option) (*Qubit, error) {
	local, _ := NewLocalSpace(0, 1) // constant, always valid
	b, err := newBase(methodNewQubit, g, local, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	b.logger.Debug("hilbert space created", "kind", KindQubit, "sites", b.size)

	return &Qubit{base: b}, nil
}

// RandomVals fills state with independent uniform bits.
func (q *Qubit) RandomVals(state []float64, rng RandSource) error {
	if err := q.checkSample(state, rng); err != nil {
		return err
	}
	q.fillUniform(state, rng)

	return nil
}

// UpdateConf overwrites the listed sites.
func (q *Qubit) UpdateConf(state []float64, sites []int, values []float64) error {
	return q.updateConf(state, sites, values)
}

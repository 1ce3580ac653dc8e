// SPDX-License-Identifier: MIT

package hilbert

import (
	"fmt"

	"github.com/katalvlaran/manybody/lattice"
)

const methodNewCustom = "NewCustom"

// Custom is a space whose local states are supplied by the caller.
type Custom struct {
	base
}

var _ Space = (*Custom)(nil)

// NewCustom builds a space on g with the given local states, which must obey
// the NewLocalSpace rules.
func NewCustom(g lattice.Graph, states []float64, opts ...Option) (*Custom, error) {
	local, err := NewLocalSpace(states...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewCustom, err)
	}
	b, err := newBase(methodNewCustom, g, local, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	b.logger.Debug("hilbert space created", "kind", KindCustom, "sites", b.size, "local_size", local.Size())

	return &Custom{base: b}, nil
}

// RandomVals fills state with independent uniform draws from the local states.
func (c *Custom) RandomVals(state []float64, rng RandSource) error {
	if err := c.checkSample(state, rng); err != nil {
		return err
	}
	c.fillUniform(state, rng)

	return nil
}

// UpdateConf overwrites the listed sites.
func (c *Custom) UpdateConf(state []float64, sites []int, values []float64) error {
	return c.updateConf(state, sites, values)
}

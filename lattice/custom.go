// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/manybody/builder"
)

const (
	methodCustom                 = "NewCustom"
	methodCustomFromEdges        = "NewCustomFromEdges"
	methodCustomFromColoredEdges = "NewCustomFromColoredEdges"
)

// Custom is a user-defined lattice: either a bare site count with no bonds,
// or the sites spanned by an explicit edge list.
type Custom struct {
	*bondGraph
	bipartite bool
	connected bool
}

// NewCustom returns an edgeless lattice with size sites.
// Returns ErrBadSize if size < 1.
func NewCustom(size int, opts ...Option) (*Custom, error) {
	if size < 1 {
		return nil, fmt.Errorf("%s: size=%d: %w", methodCustom, size, ErrBadSize)
	}
	cfg := newConfig(opts...)

	c, err := buildCustom(methodCustom, size, nil)
	if err != nil {
		return nil, err
	}
	cfg.logger.Info("custom lattice created", "sites", size)

	return c, nil
}

// NewCustomFromEdges builds a lattice from undirected edges, all of color 0.
// The number of sites is one more than the largest endpoint.
// Returns ErrBadSize for no edges and ErrBadEdge for a negative endpoint, a
// self-loop or a repeated bond.
// Complexity: O(E log E) time, O(V + E) memory.
func NewCustomFromEdges(edges [][2]int, opts ...Option) (*Custom, error) {
	colored := make([][3]int, len(edges))
	for k, e := range edges {
		colored[k] = [3]int{e[0], e[1], 0}
	}

	return newCustomFromBonds(methodCustomFromEdges, colored, opts)
}

// NewCustomFromColoredEdges builds a lattice from {i, j, color} triples.
// Validation matches NewCustomFromEdges.
func NewCustomFromColoredEdges(edges [][3]int, opts ...Option) (*Custom, error) {
	return newCustomFromBonds(methodCustomFromColoredEdges, edges, opts)
}

func newCustomFromBonds(method string, edges [][3]int, opts []Option) (*Custom, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%s: empty edge list: %w", method, ErrBadSize)
	}
	cfg := newConfig(opts...)

	nsites := 0
	bonds := make([]builder.Bond, len(edges))
	for k, e := range edges {
		if e[0] < 0 || e[1] < 0 {
			return nil, fmt.Errorf("%s: edge (%d,%d): %w", method, e[0], e[1], ErrBadEdge)
		}
		nsites = max(nsites, e[0], e[1])
		bonds[k] = builder.Bond{I: e[0], J: e[1], Color: e[2]}
	}
	nsites++

	c, err := buildCustom(method, nsites, bonds)
	if err != nil {
		return nil, err
	}
	cfg.logger.Info("custom lattice created",
		"sites", nsites, "edges", len(edges), "bipartite", c.bipartite, "connected", c.connected)

	return c, nil
}

func buildCustom(method string, nsites int, bonds []builder.Bond) (*Custom, error) {
	g, err := builder.BuildGraph(nil, builder.Sites(nsites), builder.Bonds(bonds))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrBadEdge, err)
	}
	bg, err := newBondGraph(g, nsites)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	c := &Custom{bondGraph: bg}
	c.bipartite = IsBipartite(c)
	c.connected = IsConnected(c)

	return c, nil
}

// IsBipartite reports whether the sites admit a two-coloring.
func (c *Custom) IsBipartite() bool { return c.bipartite }

// IsConnected reports whether every site is reachable from site 0.
func (c *Custom) IsConnected() bool { return c.connected }

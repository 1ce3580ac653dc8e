// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/manybody/builder"
	"github.com/katalvlaran/manybody/core"
)

// Graph is the lattice surface consumed by Hilbert spaces: the number of
// sites. Implementations are owned by the caller and must outlive any space
// built on them.
type Graph interface {
	Nsites() int
}

// Adjacency is a Graph backed by a bond graph. AdjacencyList()[i] lists the
// neighbors of site i in ascending order. Only lattices of this package
// implement it.
type Adjacency interface {
	Graph
	AdjacencyList() [][]int
	graph() *bondGraph
}

// bondGraph wraps a built core.Graph whose vertex IDs are the decimal site
// numbers, plus the neighbor lists decoded from it.
type bondGraph struct {
	bonds   *core.Graph
	nsites  int
	adjlist [][]int
}

func newBondGraph(g *core.Graph, nsites int) (*bondGraph, error) {
	bg := &bondGraph{bonds: g, nsites: nsites, adjlist: make([][]int, nsites)}
	for i := 0; i < nsites; i++ {
		ids, err := g.NeighborIDs(builder.SiteID(i))
		if err != nil {
			return nil, fmt.Errorf("site %d: %w", i, err)
		}
		row := make([]int, len(ids))
		for k, id := range ids {
			if row[k], err = builder.SiteIndex(id); err != nil {
				return nil, err
			}
		}
		// vertex IDs sort as strings; sites sort as numbers
		sort.Ints(row)
		bg.adjlist[i] = row
	}

	return bg, nil
}

func (bg *bondGraph) graph() *bondGraph { return bg }

// Nsites returns the number of sites.
func (bg *bondGraph) Nsites() int { return bg.nsites }

// AdjacencyList returns a copy of the neighbor lists.
func (bg *bondGraph) AdjacencyList() [][]int {
	out := make([][]int, len(bg.adjlist))
	for i, row := range bg.adjlist {
		out[i] = append([]int(nil), row...)
	}

	return out
}

// Bonds returns a deep copy of the underlying bond graph. Vertex IDs are the
// decimal site numbers.
func (bg *bondGraph) Bonds() *core.Graph { return bg.bonds.Clone() }

// EdgeColors maps every bond {i, j} with i ≤ j to its color.
func (bg *bondGraph) EdgeColors() map[[2]int]int {
	edges := bg.bonds.Edges()
	out := make(map[[2]int]int, len(edges))
	for _, e := range edges {
		i, _ := builder.SiteIndex(e.From)
		j, _ := builder.SiteIndex(e.To)
		out[[2]int{min(i, j), max(i, j)}] = e.Color
	}

	return out
}

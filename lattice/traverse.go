// SPDX-License-Identifier: MIT
// Package: manybody/lattice
//
// traverse.go — distances, connectivity and two-coloring over the bond graph.
//
// Every routine runs bfs.BFS on the lattice's core.Graph and maps vertex IDs
// back to site numbers.

package lattice

import (
	"sort"

	"github.com/katalvlaran/manybody/bfs"
	"github.com/katalvlaran/manybody/builder"
)

// walk runs BFS from site root and returns the depth of every site, -1 for
// unreachable ones, and the sites visited in BFS order.
func walk(bg *bondGraph, root int) ([]int, []int, error) {
	res, err := bfs.BFS(bg.bonds, builder.SiteID(root))
	if err != nil {
		return nil, nil, err
	}
	depth := make([]int, bg.nsites)
	for i := range depth {
		depth[i] = -1
	}
	order := make([]int, 0, len(res.Order))
	for _, id := range res.Order {
		site, err := builder.SiteIndex(id)
		if err != nil {
			return nil, nil, err
		}
		depth[site] = res.Depth[id]
		order = append(order, site)
	}

	return depth, order, nil
}

// Distances returns the BFS hop distance from root to every site, with -1
// for unreachable sites. Returns nil if root is outside the lattice.
// Time: O(V + E). Memory: O(V).
func Distances(g Adjacency, root int) []int {
	bg := g.graph()
	if root < 0 || root >= bg.nsites {
		return nil
	}
	dist, _, err := walk(bg, root)
	if err != nil {
		return nil
	}

	return dist
}

// IsConnected reports whether every site is reachable from site 0.
func IsConnected(g Adjacency) bool {
	bg := g.graph()
	_, order, err := walk(bg, 0)

	return err == nil && len(order) == bg.nsites
}

// Components returns the connected components, each sorted ascending, in
// order of their smallest site.
// Time: O(V + E).
func Components(g Adjacency) [][]int {
	bg := g.graph()
	seen := make([]bool, bg.nsites)
	var out [][]int
	for s := 0; s < bg.nsites; s++ {
		if seen[s] {
			continue
		}
		_, order, err := walk(bg, s)
		if err != nil {
			return nil
		}
		for _, v := range order {
			seen[v] = true
		}
		sort.Ints(order)
		out = append(out, order)
	}

	return out
}

// IsBipartite colors every component by BFS depth parity and reports whether
// no bond joins equally colored sites.
func IsBipartite(g Adjacency) bool {
	bg := g.graph()
	parity := make([]int, bg.nsites)
	seen := make([]bool, bg.nsites)
	for s := 0; s < bg.nsites; s++ {
		if seen[s] {
			continue
		}
		depth, order, err := walk(bg, s)
		if err != nil {
			return false
		}
		for _, v := range order {
			seen[v] = true
			parity[v] = depth[v] & 1
		}
	}
	for i, row := range bg.adjlist {
		for _, j := range row {
			if parity[i] == parity[j] {
				return false
			}
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

// Package lattice supplies the site-level structure that many-body Hilbert
// spaces are defined on.
//
// What:
//
//   - Graph is the single capability a Hilbert space consumes: Nsites().
//   - Hypercube builds an L^d hypercubic lattice with open or periodic
//     boundaries, its adjacency list and its translation table.
//   - Custom wraps a bare site count or an explicit, optionally colored,
//     edge list.
//   - Both wrap a core.Graph assembled by the builder package; vertex IDs
//     are the decimal site numbers. Bonds() and EdgeColors() expose it.
//   - Distances, IsConnected, Components and IsBipartite run bfs.BFS over
//     any Adjacency.
//
// Sites are numbered 0..Nsites()-1. For a Hypercube, coordinate 0 varies
// fastest: site = Σ coord[d]·L^d.
//
// Complexity:
//
//   - NewHypercube:  O(L^d · d) time and memory.
//   - SymmetryTable: O(N² · d) time, O(N²) memory (N = L^d).
//   - Distances:     O(V + E).
//
// Errors:
//
//   - ErrBadSize:        a custom lattice with no sites.
//   - ErrBadLength:      hypercube side length < 1, or L^d overflows int.
//   - ErrBadDimension:   hypercube dimension < 1.
//   - ErrPBCTooSmall:    periodic boundaries with length ≤ 2.
//   - ErrBadEdge:        a negative endpoint, a self-loop or a repeated bond.
//   - ErrNoSymmetry:     translations requested on an open hypercube.
//   - ErrSiteOutOfRange: a site or coordinate outside the lattice.
package lattice

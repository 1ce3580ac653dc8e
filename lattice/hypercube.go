// SPDX-License-Identifier: MIT
// Package: manybody/lattice
//
// hypercube.go — L^d hypercubic lattice.
//
// Contract:
//   • length ≥ 1, ndim ≥ 1, and pbc requires length > 2.
//   • Sites are numbered with coordinate 0 varying fastest.
//   • Open boundaries: one bond per neighboring pair along each axis.
//   • Periodic boundaries: every site has exactly 2·ndim neighbors.
//   • L^d must fit in an int (else ErrBadLength).
//
// Complexity:
//   • Time:  O(L^d · d) for coordinates and bonds.
//   • Space: O(L^d · d).

package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/manybody/builder"
)

const methodHypercube = "NewHypercube"

const minPBCLength = 3

// Hypercube is an immutable hypercubic lattice of side Length() in Ndim()
// dimensions.
type Hypercube struct {
	*bondGraph
	length  int
	ndim    int
	pbc     bool
	sites   [][]int // site → coordinate
	strides []int   // strides[d] = L^d
}

// NewHypercube validates the parameters, builds the bond graph and the
// coordinate table. Returns ErrBadLength when L^d overflows int.
func NewHypercube(length, ndim int, pbc bool, opts ...Option) (*Hypercube, error) {
	if length < 1 {
		return nil, fmt.Errorf("%s: side length must be at least 1, but got %d: %w", methodHypercube, length, ErrBadLength)
	}
	if ndim < 1 {
		return nil, fmt.Errorf("%s: dimension must be at least 1, but got %d: %w", methodHypercube, ndim, ErrBadDimension)
	}
	if pbc && length < minPBCLength {
		return nil, fmt.Errorf("%s: length=%d: %w", methodHypercube, length, ErrPBCTooSmall)
	}
	nsites, err := builder.Volume(length, ndim)
	if errors.Is(err, builder.ErrTooLarge) {
		return nil, fmt.Errorf("%s: %d^%d sites overflow int: %w", methodHypercube, length, ndim, ErrBadLength)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHypercube, err)
	}
	cfg := newConfig(opts...)

	g, err := builder.BuildGraph(nil, builder.Hypercube(length, ndim, pbc))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHypercube, err)
	}
	bg, err := newBondGraph(g, nsites)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHypercube, err)
	}

	h := &Hypercube{bondGraph: bg, length: length, ndim: ndim, pbc: pbc}
	h.generateLatticePoints()

	cfg.logger.Info("hypercube created", "dimension", ndim, "length", length, "pbc", pbc, "sites", nsites)

	return h, nil
}

func (h *Hypercube) generateLatticePoints() {
	h.strides = make([]int, h.ndim)
	stride := 1
	for d := 0; d < h.ndim; d++ {
		h.strides[d] = stride
		if d+1 < h.ndim {
			stride *= h.length
		}
	}

	h.sites = make([][]int, h.nsites)
	coord := make([]int, h.ndim)
	for i := 0; i < h.nsites; i++ {
		h.sites[i] = append([]int(nil), coord...)
		// odometer step, axis 0 fastest
		for d := 0; d < h.ndim; d++ {
			coord[d]++
			if coord[d] < h.length {
				break
			}
			coord[d] = 0
		}
	}
}

// Length returns the side length L.
func (h *Hypercube) Length() int { return h.length }

// Ndim returns the number of dimensions d.
func (h *Hypercube) Ndim() int { return h.ndim }

// PBC reports whether periodic boundary conditions are in use.
func (h *Hypercube) PBC() bool { return h.pbc }

// IsBipartite reports whether a checkerboard coloring exists: always with
// open boundaries, only for even side lengths with PBC.
func (h *Hypercube) IsBipartite() bool {
	return !h.pbc || h.length%2 == 0
}

// IsConnected always reports true.
func (h *Hypercube) IsConnected() bool { return true }

// SiteCoord returns the coordinate of site i.
func (h *Hypercube) SiteCoord(i int) ([]int, error) {
	if i < 0 || i >= h.nsites {
		return nil, fmt.Errorf("SiteCoord: site=%d of %d: %w", i, h.nsites, ErrSiteOutOfRange)
	}

	return append([]int(nil), h.sites[i]...), nil
}

// CoordToSite maps a coordinate back to its site index.
func (h *Hypercube) CoordToSite(coord []int) (int, error) {
	if len(coord) != h.ndim {
		return 0, fmt.Errorf("CoordToSite: got %d coordinates, want %d: %w", len(coord), h.ndim, ErrSiteOutOfRange)
	}
	site := 0
	for d, x := range coord {
		if x < 0 || x >= h.length {
			return 0, fmt.Errorf("CoordToSite: coord[%d]=%d: %w", d, x, ErrSiteOutOfRange)
		}
		site += x * h.strides[d]
	}

	return site, nil
}

// SymmetryTable returns, for every lattice translation, the permutation of
// sites it induces: table[i][p] is the image of site p under translation by
// the coordinate of site i. Only defined with PBC.
func (h *Hypercube) SymmetryTable() ([][]int, error) {
	if !h.pbc {
		return nil, fmt.Errorf("SymmetryTable: %w", ErrNoSymmetry)
	}

	table := make([][]int, h.nsites)
	for i := 0; i < h.nsites; i++ {
		perm := make([]int, h.nsites)
		for p := 0; p < h.nsites; p++ {
			site := 0
			for d := 0; d < h.ndim; d++ {
				site += ((h.sites[i][d] + h.sites[p][d]) % h.length) * h.strides[d]
			}
			perm[p] = site
		}
		table[i] = perm
	}

	return table, nil
}

// SPDX-License-Identifier: MIT
// Package: manybody/builder
//
// impl_hypercube.go — L^d hypercubic bonds, generalizing Grid and Cycle.
//
// Contract:
//   • length ≥ 1 and ndim ≥ 1; pbc requires length ≥ 3 so that forward and
//     backward neighbors differ (else ErrTooFewVertices).
//   • Vertices "0".."L^d-1"; coordinate 0 varies fastest.
//   • Open boundaries: for each site and axis, a bond to the next site along
//     the axis if it exists. Periodic: a bond to the next site modulo L.
//   • Every bond has color 0.
//
// Complexity:
//   • Time:  O(L^d · d).
//   • Space: O(d) extra.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/manybody/core"
)

const (
	methodHypercube = "Hypercube"
	minPBCLength    = 3
)

// Volume returns length^ndim, or ErrTooLarge when it overflows int.
func Volume(length, ndim int) (int, error) {
	if length < 1 || ndim < 1 {
		return 0, fmt.Errorf("Volume: length=%d, ndim=%d: %w", length, ndim, ErrTooFewVertices)
	}
	if length == 1 {
		return 1, nil
	}
	n := 1
	for d := 0; d < ndim; d++ {
		if n > math.MaxInt/length {
			return 0, fmt.Errorf("Volume: %d^%d: %w", length, ndim, ErrTooLarge)
		}
		n *= length
	}

	return n, nil
}

// Hypercube returns a Constructor for a length^ndim hypercubic lattice.
func Hypercube(length, ndim int, pbc bool) Constructor {
	return func(g *core.Graph) error {
		if pbc && length < minPBCLength {
			return fmt.Errorf("%s: periodic length=%d (must be ≥ %d): %w",
				methodHypercube, length, minPBCLength, ErrTooFewVertices)
		}
		n, err := Volume(length, ndim)
		if err != nil {
			return fmt.Errorf("%s: %w", methodHypercube, err)
		}
		if err := Sites(n)(g); err != nil {
			return fmt.Errorf("%s: %w", methodHypercube, err)
		}

		coord := make([]int, ndim)
		for i := 0; i < n; i++ {
			stride := 1
			for d := 0; d < ndim; d++ {
				var j int
				switch {
				case coord[d]+1 < length:
					j = i + stride
				case pbc:
					j = i - coord[d]*stride
				default:
					stride *= length
					continue
				}
				if _, err := g.AddEdge(SiteID(i), SiteID(j)); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodHypercube, i, j, err)
				}
				stride *= length
			}
			// odometer step, axis 0 fastest
			for d := 0; d < ndim; d++ {
				coord[d]++
				if coord[d] < length {
					break
				}
				coord[d] = 0
			}
		}

		return nil
	}
}

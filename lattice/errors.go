// SPDX-License-Identifier: MIT
// Package: manybody/lattice
//
// errors.go — sentinel errors for the lattice package.
//
// Callers branch with errors.Is; constructors attach the method name and the
// offending values with fmt.Errorf("%s: ...: %w", method, ErrX).

package lattice

import "errors"

var (
	// ErrBadSize indicates a lattice with fewer than one site.
	ErrBadSize = errors.New("lattice: number of sites must be ≥ 1")

	// ErrBadLength indicates a hypercube side length below 1, or one whose
	// L^d site count overflows int.
	ErrBadLength = errors.New("lattice: side length must be ≥ 1 and L^d must fit in an int")

	// ErrBadDimension indicates a hypercube dimension below 1.
	ErrBadDimension = errors.New("lattice: dimension must be ≥ 1")

	// ErrPBCTooSmall indicates periodic boundaries on a side length ≤ 2,
	// where the forward and backward neighbors would coincide.
	ErrPBCTooSmall = errors.New("lattice: L<=2 hypercubes cannot have periodic boundary conditions")

	// ErrBadEdge indicates an edge with a negative endpoint, a self-loop or a
	// repeated bond.
	ErrBadEdge = errors.New("lattice: invalid edge")

	// ErrNoSymmetry indicates that translations are undefined without PBC.
	ErrNoSymmetry = errors.New("lattice: cannot generate translation symmetries without PBC")

	// ErrSiteOutOfRange indicates a site index or coordinate outside the lattice.
	ErrSiteOutOfRange = errors.New("lattice: site out of range")
)

// SPDX-License-Identifier: MIT
// Package: manybody/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach the method name and the
// offending values with %w.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size, length or dimension below the
	// allowed minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrTooLarge indicates a site count that overflows int.
	ErrTooLarge = errors.New("builder: site count overflows int")

	// ErrBadBond indicates a bond with a negative endpoint.
	ErrBadBond = errors.New("builder: invalid bond")

	// ErrBadSiteID indicates a vertex ID that is not a non-negative decimal.
	ErrBadSiteID = errors.New("builder: vertex ID is not a site number")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

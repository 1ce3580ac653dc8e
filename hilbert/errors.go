// SPDX-License-Identifier: MIT
// Package: manybody/hilbert
//
// errors.go — sentinel errors for the hilbert package.
//
// Error policy:
//   • Structural and feasibility failures wrap ErrInvalidInput with the
//     method name and the offending values.
//   • Buffer misuse has its own sentinels and never mutates the buffer.
//   • Callers MUST use errors.Is; messages are not part of the contract.

package hilbert

import "errors"

var (
	// ErrInvalidInput indicates bad construction parameters or an
	// infeasible global constraint.
	ErrInvalidInput = errors.New("hilbert: invalid input")

	// ErrStateLength indicates a configuration buffer whose length differs
	// from Size().
	ErrStateLength = errors.New("hilbert: configuration length mismatch")

	// ErrNilRand indicates a nil random engine.
	ErrNilRand = errors.New("hilbert: random engine is nil")

	// ErrUpdateMismatch indicates site and value lists of different lengths.
	ErrUpdateMismatch = errors.New("hilbert: sites and values differ in length")

	// ErrSiteOutOfRange indicates an update addressing a site outside [0, Size()).
	ErrSiteOutOfRange = errors.New("hilbert: site out of range")
)

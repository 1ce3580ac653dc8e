// SPDX-License-Identifier: MIT

package hilbertindex

import "errors"

var (
	// ErrNilSpace indicates New was called without a space.
	ErrNilSpace = errors.New("hilbertindex: nil space")

	// ErrNotDiscrete indicates a space without a finite list of local states.
	ErrNotDiscrete = errors.New("hilbertindex: space is not discrete")

	// ErrTooLarge indicates LocalSize^Size reaches the enumeration bound.
	ErrTooLarge = errors.New("hilbertindex: space too large to enumerate")

	// ErrDuplicateState indicates a local state listed twice, which would
	// break the bijection.
	ErrDuplicateState = errors.New("hilbertindex: duplicate local state")

	// ErrIndexOutOfRange indicates k outside [0, NStates()).
	ErrIndexOutOfRange = errors.New("hilbertindex: index out of range")

	// ErrStateLength indicates a configuration whose length differs from Size().
	ErrStateLength = errors.New("hilbertindex: configuration length mismatch")

	// ErrUnknownValue indicates a site value that is not exactly a local state.
	ErrUnknownValue = errors.New("hilbertindex: value is not a local state")

	// ErrNilPredicate indicates Filter was called with a nil predicate.
	ErrNilPredicate = errors.New("hilbertindex: nil predicate")
)

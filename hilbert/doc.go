// SPDX-License-Identifier: MIT

// Package hilbert models the discrete configuration space of quantum
// many-body degrees of freedom living on the sites of a lattice.
//
// A Space replicates one LocalSpace (the ordered quantum numbers a single
// site may take) across every site of a borrowed lattice.Graph, and offers
// constrained random sampling and in-place local updates of configurations.
// Configurations are plain []float64 buffers of length Size(), always owned
// by the caller.
//
// Variants:
//
//   - Spin:   values -2S, -2S+2, …, 2S (twice Sz), optional fixed TotalSz.
//   - Boson:  occupations 0..Nmax, optional fixed particle number.
//   - Qubit:  values {0, 1}.
//   - Custom: any finite, strictly increasing list of values.
//
// Random engines:
//
// RandomVals draws from a caller-supplied RandSource (a *math/rand.Rand
// satisfies it). The engine advances but is never stored or reseeded. An
// engine must not be shared between goroutines; Space values themselves are
// safe for concurrent read-only use once constructed and constrained.
//
// Constrained sampling:
//
//   - Spin S=1/2: exact up/down counts, uniformly shuffled. Uniform over the
//     fixed-magnetization set.
//   - Spin S>1/2: greedy randomized placement of quanta starting from the
//     all-minimum configuration. Exact total, NOT uniform over the set.
//   - Boson: particles dropped one by one on random non-full sites. Exact
//     total, NOT uniform over the set.
//
// The non-uniform samplers are kept as they are; statistical consumers may
// depend on their distribution.
//
// Errors:
//
// Every construction or constraint failure wraps ErrInvalidInput and names the
// method. Misuse of RandomVals/UpdateConf (wrong buffer length, bad sites)
// returns ErrStateLength, ErrNilRand, ErrUpdateMismatch or ErrSiteOutOfRange
// without touching the buffer. Build with -tags hilbertdebug to assert after
// each UpdateConf that the global constraint still holds; a violation panics.
package hilbert

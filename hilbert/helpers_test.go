package hilbert_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/manybody/lattice"
	"github.com/stretchr/testify/require"
)

// seed matches the fixture seed used across the package tests.
const seed = 3421

func newRand() *rand.Rand { return rand.New(rand.NewSource(seed)) }

// chain returns an edgeless lattice of n sites.
func chain(t testing.TB, n int) lattice.Graph {
	t.Helper()
	g, err := lattice.NewCustom(n)
	require.NoError(t, err)

	return g
}

// emptyGraph reports zero sites, which no lattice constructor produces.
type emptyGraph struct{}

func (emptyGraph) Nsites() int { return 0 }

func ptr[T any](v T) *T { return &v }

func sum(state []float64) float64 {
	var s float64
	for _, v := range state {
		s += v
	}

	return s
}

func count(state []float64, v float64) int {
	n := 0
	for _, x := range state {
		if x == v {
			n++
		}
	}

	return n
}

package hilbertindex_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/manybody/hilbert"
	"github.com/katalvlaran/manybody/lattice"
	"github.com/stretchr/testify/require"
)

const seed = 3421

func newRand() *rand.Rand { return rand.New(rand.NewSource(seed)) }

func chain(t testing.TB, n int) lattice.Graph {
	t.Helper()
	g, err := lattice.NewCustom(n)
	require.NoError(t, err)

	return g
}

func spinHalf(t testing.TB, n int) hilbert.Space {
	t.Helper()
	h, err := hilbert.NewSpin(chain(t, n), hilbert.SpinConfig{S: 0.5})
	require.NoError(t, err)

	return h
}

func ptr[T any](v T) *T { return &v }

// continuous reports a non-discrete space.
type continuous struct{ hilbert.Space }

func (continuous) IsDiscrete() bool { return false }

// duplicated lists the same local state twice.
type duplicated struct{ hilbert.Space }

func (duplicated) LocalStates() []float64 { return []float64{1, 1} }

func binomial(n, k int) int {
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}

	return r
}

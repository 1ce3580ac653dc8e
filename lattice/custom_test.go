package lattice_test

import (
	"testing"

	"github.com/katalvlaran/manybody/core"
	"github.com/katalvlaran/manybody/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustom(t *testing.T) {
	_, err := lattice.NewCustom(0)
	assert.ErrorIs(t, err, lattice.ErrBadSize)

	c, err := lattice.NewCustom(5)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Nsites())
	assert.False(t, c.IsConnected(), "isolated sites are not connected")
	assert.True(t, c.IsBipartite())

	single, err := lattice.NewCustom(1)
	require.NoError(t, err)
	assert.True(t, single.IsConnected())
}

func TestNewCustomFromEdges(t *testing.T) {
	_, err := lattice.NewCustomFromEdges(nil)
	assert.ErrorIs(t, err, lattice.ErrBadSize)

	_, err = lattice.NewCustomFromEdges([][2]int{{0, 1}, {1, -2}})
	assert.ErrorIs(t, err, lattice.ErrBadEdge)

	triangle, err := lattice.NewCustomFromEdges([][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, 3, triangle.Nsites())
	assert.True(t, triangle.IsConnected())
	assert.False(t, triangle.IsBipartite())

	// Sites 0..4 with 3 untouched: disconnected.
	sparse, err := lattice.NewCustomFromEdges([][2]int{{0, 1}, {2, 4}})
	require.NoError(t, err)
	assert.Equal(t, 5, sparse.Nsites())
	assert.False(t, sparse.IsConnected())
	assert.Equal(t, []int{0, 1, -1, -1, -1}, lattice.Distances(sparse, 0))
}

func TestDistances_Chain(t *testing.T) {
	chain, err := lattice.NewHypercube(5, 1, false)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, lattice.Distances(chain, 0))
	assert.Equal(t, []int{2, 1, 0, 1, 2}, lattice.Distances(chain, 2))
	assert.Nil(t, lattice.Distances(chain, 5))
	assert.Nil(t, lattice.Distances(chain, -1))
}

func TestAdjacencyList_IsCopy(t *testing.T) {
	c, err := lattice.NewCustomFromEdges([][2]int{{0, 1}})
	require.NoError(t, err)

	adj := c.AdjacencyList()
	adj[0][0] = 42
	assert.Equal(t, []int{1}, c.AdjacencyList()[0])
}

func TestNewCustomFromEdges_RejectsLoopsAndRepeats(t *testing.T) {
	_, err := lattice.NewCustomFromEdges([][2]int{{0, 1}, {2, 2}})
	assert.ErrorIs(t, err, lattice.ErrBadEdge)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = lattice.NewCustomFromEdges([][2]int{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, lattice.ErrBadEdge)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestNewCustomFromColoredEdges(t *testing.T) {
	_, err := lattice.NewCustomFromColoredEdges(nil)
	assert.ErrorIs(t, err, lattice.ErrBadSize)
	_, err = lattice.NewCustomFromColoredEdges([][3]int{{-1, 0, 1}})
	assert.ErrorIs(t, err, lattice.ErrBadEdge)

	c, err := lattice.NewCustomFromColoredEdges([][3]int{{1, 0, 2}, {1, 2, 0}, {2, 3, 1}})
	require.NoError(t, err)
	assert.Equal(t, 4, c.Nsites())
	assert.Equal(t, map[[2]int]int{{0, 1}: 2, {1, 2}: 0, {2, 3}: 1}, c.EdgeColors())
	assert.True(t, c.IsConnected())
	assert.True(t, c.IsBipartite())

	plain, err := lattice.NewCustomFromEdges([][2]int{{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, map[[2]int]int{{0, 1}: 0}, plain.EdgeColors())
}

func TestComponents(t *testing.T) {
	sparse, err := lattice.NewCustomFromEdges([][2]int{{0, 1}, {2, 4}, {4, 11}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 4, 11}, {3}, {5}, {6}, {7}, {8}, {9}, {10}}, lattice.Components(sparse))

	ring, err := lattice.NewHypercube(6, 1, true)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5}}, lattice.Components(ring))

	bare, err := lattice.NewCustom(3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, lattice.Components(bare))
}

// TestAdjacencyList_NumericOrder checks that sites ≥ 10 sort as numbers, not
// as vertex ID strings.
func TestAdjacencyList_NumericOrder(t *testing.T) {
	star, err := lattice.NewCustomFromEdges([][2]int{{0, 10}, {0, 2}, {0, 9}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 9, 10}, star.AdjacencyList()[0])
	assert.Equal(t, []int{0, -1, 1, -1, -1, -1, -1, -1, -1, 1, 1}, lattice.Distances(star, 0))
}

package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmisabella/mazer/generator"
	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// TestBraid_Bounds verifies braiding adds at most budget links and keeps the
// maze connected.
func TestBraid_Bounds(t *testing.T) {
	for _, fam := range topology.Families {
		for _, budget := range []int{0, 1, 5, 1000} {
			g := carve(t, generator.RecursiveBacktracker, fam, 10, 8, 11)
			base := g.LinkCount()

			added, err := generator.Braid(g, rand.New(rand.NewSource(5)), 1, budget)
			require.NoError(t, err)
			assert.LessOrEqual(t, added, budget)
			assert.Equal(t, base+added, g.LinkCount())
			assert.True(t, g.IsConnected())
			if budget == 0 {
				assert.Zero(t, added)
			}
		}
	}
}

// TestBraid_Full removes every dead end when p is 1 and the budget is ample.
func TestBraid_Full(t *testing.T) {
	g := carve(t, generator.Kruskals, topology.Orthogonal, 12, 12, 21)
	require.NotEmpty(t, g.DeadEnds())

	added, err := generator.Braid(g, rand.New(rand.NewSource(1)), 1, g.Size())
	require.NoError(t, err)
	assert.Positive(t, added)
	assert.Empty(t, g.DeadEnds())
}

// TestBraid_ZeroProbability leaves the maze perfect.
func TestBraid_ZeroProbability(t *testing.T) {
	g := carve(t, generator.Prims, topology.Sigma, 6, 6, 2)
	added, err := generator.Braid(g, rand.New(rand.NewSource(1)), 0, 100)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.True(t, g.IsPerfect())
}

// TestBraid_Validation rejects bad parameters.
func TestBraid_Validation(t *testing.T) {
	g := carve(t, generator.Prims, topology.Orthogonal, 3, 3, 1)
	rng := rand.New(rand.NewSource(1))
	for _, p := range []float64{-0.1, 1.5} {
		_, err := generator.Braid(g, rng, p, 1)
		assert.ErrorIs(t, err, grid.ErrValidation)
	}
	_, err := generator.Braid(g, rng, 0.5, -1)
	assert.ErrorIs(t, err, grid.ErrValidation)
	_, err = generator.Braid(nil, rng, 0.5, 1)
	assert.ErrorIs(t, err, grid.ErrValidation)
}
